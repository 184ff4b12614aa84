package vista

import "github.com/tanema/gween/ease"

// Interpolation selects the easing curve used when blending camera state
// toward its target. Each maps to a specific [ease.TweenFunc].
type Interpolation uint8

const (
	Linear         Interpolation = iota // constant-rate blend
	Smoothstep                          // 3t²-2t³ hermite ramp
	QuadraticIn                         // accelerate from rest
	QuadraticOut                        // decelerate to rest
	QuadraticInOut                      // accelerate then decelerate
	CubicIn                             // sharper accelerate
	CubicOut                            // sharper decelerate
	CubicInOut                          // sharper accelerate/decelerate
)

// smoothstepEase is the classic hermite smoothstep expressed as a gween
// easing function (gween has no built-in smoothstep).
func smoothstepEase(t, b, c, d float32) float32 {
	t /= d
	s := t * t * (3 - 2*t)
	return b + c*s
}

// TweenFunc returns the gween easing function corresponding to this
// Interpolation.
func (i Interpolation) TweenFunc() ease.TweenFunc {
	switch i {
	case Linear:
		return ease.Linear
	case Smoothstep:
		return smoothstepEase
	case QuadraticIn:
		return ease.InQuad
	case QuadraticOut:
		return ease.OutQuad
	case QuadraticInOut:
		return ease.InOutQuad
	case CubicIn:
		return ease.InCubic
	case CubicOut:
		return ease.OutCubic
	case CubicInOut:
		return ease.InOutCubic
	default:
		return ease.Linear
	}
}

// Interpolate blends from start to end by t in [0, 1] using the given easing
// curve. t is NOT clamped: callers on the per-frame hot path are expected to
// pass a valid t, and values outside [0, 1] extrapolate.
func Interpolate(start, end, t float64, kind Interpolation) float64 {
	fn := kind.TweenFunc()
	return float64(fn(float32(t), float32(start), float32(end-start), 1))
}

// InterpolateVec2 blends two vectors component-wise with the same easing
// curve. Like Interpolate, t is not clamped.
func InterpolateVec2(start, end Vec2, t float64, kind Interpolation) Vec2 {
	return Vec2{
		X: Interpolate(start.X, end.X, t, kind),
		Y: Interpolate(start.Y, end.Y, t, kind),
	}
}
