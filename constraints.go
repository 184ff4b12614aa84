package vista

// Constraints limits camera movement, zoom, and rotation. Replaced wholesale
// via [Camera.SetConstraints] rather than mutated field by field, so the
// camera never observes a half-updated set.
type Constraints struct {
	// MinZoom and MaxZoom bound the zoom factor. Both must be positive
	// with MinZoom <= MaxZoom; invalid values are repaired by normalize.
	MinZoom float64
	MaxZoom float64

	// Bounds is the world rectangle the visible area must stay inside
	// when BoundsEnabled is true. If the visible area is larger than
	// Bounds on an axis, the camera centers on that axis instead.
	Bounds        Rect
	BoundsEnabled bool

	// RotationRange limits camera rotation in radians.
	RotationRange Range
}

const (
	defaultMinZoom  = 0.1
	defaultMaxZoom  = 10.0
	defaultRotation = 3.15 // just over pi, effectively unrestricted
)

// DefaultConstraints returns the constraint set cameras start with: zoom
// 0.1-10, no bounds, rotation free within ±pi.
func DefaultConstraints() Constraints {
	return Constraints{
		MinZoom:       defaultMinZoom,
		MaxZoom:       defaultMaxZoom,
		RotationRange: Range{Min: -defaultRotation, Max: defaultRotation},
	}
}

// normalize repairs invalid configuration in place. The camera divides by
// zoom and subtracts rectangle edges on the hot path, so it must never hold
// non-positive or inverted zoom limits.
func (c *Constraints) normalize() {
	if c.MinZoom <= 0 {
		c.MinZoom = defaultMinZoom
	}
	if c.MaxZoom <= 0 {
		c.MaxZoom = defaultMaxZoom
	}
	if c.MinZoom > c.MaxZoom {
		c.MinZoom, c.MaxZoom = c.MaxZoom, c.MinZoom
	}
	if c.RotationRange.Min > c.RotationRange.Max {
		c.RotationRange.Min, c.RotationRange.Max = c.RotationRange.Max, c.RotationRange.Min
	}
}

// clampZoom returns zoom limited to [MinZoom, MaxZoom].
func (c Constraints) clampZoom(zoom float64) float64 {
	if zoom < c.MinZoom {
		return c.MinZoom
	}
	if zoom > c.MaxZoom {
		return c.MaxZoom
	}
	return zoom
}
