package vista

import "math"

// FollowStrategy computes the desired world-space camera center each frame.
// Strategies hold configuration only; per-frame state lives on the camera, so
// swapping strategies at runtime never causes a discontinuous jump beyond
// what the camera's own smoothing allows.
type FollowStrategy interface {
	TargetPosition(cam *Camera, target Target, dt float64) Vec2
}

// Mode names the built-in follow strategies. It exists as construction sugar
// for [Camera.Follow] and [Camera.SetMode]; the active FollowStrategy is the
// source of truth.
type Mode uint8

const (
	ModeFixed      Mode = iota // camera pinned to a fixed world position
	ModeFollow                 // track the target position directly
	ModePlatformer             // move only when the target exits a deadzone
	ModeTopDown                // track with velocity-based look-ahead
)

// strategyForMode returns a default strategy instance for a legacy mode.
func (c *Camera) strategyForMode(m Mode) FollowStrategy {
	switch m {
	case ModeFixed:
		return FixedFollow{Position: c.position}
	case ModePlatformer:
		return NewPlatformerFollow(defaultDeadzoneW, defaultDeadzoneH)
	case ModeTopDown:
		return TopDownFollow{LeadFactor: defaultLeadFactor}
	default:
		return DirectFollow{}
	}
}

// modeForStrategy maps a strategy back onto a legacy mode for callers that
// still read [Camera.Mode]. Custom strategies report ModeFollow.
func modeForStrategy(s FollowStrategy) Mode {
	switch s.(type) {
	case FixedFollow:
		return ModeFixed
	case *PlatformerFollow:
		return ModePlatformer
	case TopDownFollow:
		return ModeTopDown
	default:
		return ModeFollow
	}
}

// FixedFollow keeps the camera at a constant world position, ignoring the
// target entirely.
type FixedFollow struct {
	Position Vec2
}

// TargetPosition returns the configured fixed position.
func (f FixedFollow) TargetPosition(cam *Camera, target Target, dt float64) Vec2 {
	return f.Position
}

// DirectFollow returns the target's world position verbatim. Any lag the
// player sees comes from the camera's own smoothing step, not the strategy.
type DirectFollow struct{}

// TargetPosition returns the target's position.
func (DirectFollow) TargetPosition(cam *Camera, target Target, dt float64) Vec2 {
	return target.Position()
}

const (
	defaultDeadzoneW = 200.0
	defaultDeadzoneH = 150.0
)

// PlatformerFollow moves the camera only when the target's screen projection
// leaves a deadzone rectangle centered on the viewport. Displacement is
// computed independently per axis, so the camera can track horizontally while
// staying put vertically.
type PlatformerFollow struct {
	// DeadzoneWidth and DeadzoneHeight are the deadzone dimensions in
	// screen pixels. The deadzone is always centered on the viewport.
	DeadzoneWidth  float64
	DeadzoneHeight float64
}

// NewPlatformerFollow creates a platformer strategy with the given deadzone
// size in screen pixels. Non-positive dimensions fall back to the defaults
// (200x150).
func NewPlatformerFollow(width, height float64) *PlatformerFollow {
	if width <= 0 {
		width = defaultDeadzoneW
	}
	if height <= 0 {
		height = defaultDeadzoneH
	}
	return &PlatformerFollow{DeadzoneWidth: width, DeadzoneHeight: height}
}

// TargetPosition projects the target into screen space and, if it sits
// outside the deadzone on an axis, returns the current position displaced by
// the minimal world delta that pulls the target back to the deadzone edge.
// Inside the deadzone on both axes the camera does not move.
//
// The screen-space displacement is divided by zoom to get a world delta, so
// the deadzone "feel" is tied to the current zoom level.
func (f *PlatformerFollow) TargetPosition(cam *Camera, target Target, dt float64) Vec2 {
	screen := cam.WorldToScreen(target.Position())
	center := Vec2{cam.viewportWidth / 2, cam.viewportHeight / 2}
	halfW := f.DeadzoneWidth / 2
	halfH := f.DeadzoneHeight / 2

	delta := screen.Sub(center)
	var move Vec2
	if math.Abs(delta.X) > halfW {
		move.X = delta.X - math.Copysign(halfW, delta.X)
	}
	if math.Abs(delta.Y) > halfH {
		move.Y = delta.Y - math.Copysign(halfH, delta.Y)
	}

	return cam.position.Add(move.Scale(1 / cam.zoom))
}

// lookaheadScale converts target velocity into a world-space lead distance.
// Tuned so the default lead factor gives a visually modest lead.
const lookaheadScale = 50.0

const defaultLeadFactor = 0.3

// TopDownFollow tracks the target with a velocity-based look-ahead, leading
// the camera in the direction of travel. Targets without a velocity (no
// [Mover] capability) are followed directly.
type TopDownFollow struct {
	// LeadFactor scales the look-ahead offset. 0.2-0.3 gives a modest lead.
	LeadFactor float64
}

// TargetPosition returns the target position plus velocity*scale*LeadFactor.
func (f TopDownFollow) TargetPosition(cam *Camera, target Target, dt float64) Vec2 {
	lead := velocityOf(target).Scale(lookaheadScale * f.LeadFactor)
	return target.Position().Add(lead)
}
