package vista

import "testing"

// movingTarget is a test target with the Mover capability.
type movingTarget struct {
	pos, vel Vec2
}

func (m movingTarget) Position() Vec2 { return m.pos }
func (m movingTarget) Velocity() Vec2 { return m.vel }

func TestFixedFollowIgnoresTarget(t *testing.T) {
	cam := NewCamera(800, 600)
	strategy := FixedFollow{Position: Vec2{42, -17}}
	got := strategy.TargetPosition(cam, StaticTarget{X: 999, Y: 999}, 1.0/60)
	if got != (Vec2{42, -17}) {
		t.Errorf("FixedFollow = %v, want {42 -17}", got)
	}
}

func TestDirectFollowReturnsTargetPosition(t *testing.T) {
	cam := NewCamera(800, 600)
	got := DirectFollow{}.TargetPosition(cam, StaticTarget{X: 123, Y: 456}, 1.0/60)
	if got != (Vec2{123, 456}) {
		t.Errorf("DirectFollow = %v, want {123 456}", got)
	}
}

func TestPlatformerFollowInsideDeadzone(t *testing.T) {
	cam := NewCamera(800, 600)
	strategy := NewPlatformerFollow(200, 150)

	// Camera at origin; a target at the origin projects to the viewport
	// center, well inside the deadzone, so the camera must not move.
	tests := []struct {
		name string
		pos  Vec2
	}{
		{"center", Vec2{0, 0}},
		{"near right edge", Vec2{99, 0}},
		{"near bottom edge", Vec2{0, 74}},
		{"corner", Vec2{-99, -74}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strategy.TargetPosition(cam, StaticTarget(tt.pos), 1.0/60)
			if !vecApproxEqual(got, Vec2{0, 0}, epsilon) {
				t.Errorf("camera moved to %v for in-deadzone target %v", got, tt.pos)
			}
		})
	}
}

func TestPlatformerFollowPullsToEdge(t *testing.T) {
	cam := NewCamera(800, 600)
	strategy := NewPlatformerFollow(200, 150)

	// Target at world (150, 0) projects to screen (550, 300): 150px right of
	// center, 50px outside the 100px half-deadzone. Expect a +50 world pull.
	got := strategy.TargetPosition(cam, StaticTarget{X: 150, Y: 0}, 1.0/60)
	if !vecApproxEqual(got, Vec2{50, 0}, epsilon) {
		t.Errorf("got %v, want {50 0}", got)
	}

	// Axes are independent: exit on Y only moves Y.
	got = strategy.TargetPosition(cam, StaticTarget{X: 50, Y: -100}, 1.0/60)
	if !vecApproxEqual(got, Vec2{0, -25}, epsilon) {
		t.Errorf("got %v, want {0 -25}", got)
	}
}

func TestPlatformerFollowZoomScalesDisplacement(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.SetZoom(2, false)
	strategy := NewPlatformerFollow(200, 150)

	// At zoom 2 a world point 100 right of center projects 200px right of
	// center: 100px past the deadzone edge, or 50 world units after the
	// divide by zoom.
	got := strategy.TargetPosition(cam, StaticTarget{X: 100, Y: 0}, 1.0/60)
	if !vecApproxEqual(got, Vec2{50, 0}, epsilon) {
		t.Errorf("got %v, want {50 0}", got)
	}
}

func TestPlatformerFollowDefaults(t *testing.T) {
	s := NewPlatformerFollow(0, -1)
	if s.DeadzoneWidth != 200 || s.DeadzoneHeight != 150 {
		t.Errorf("defaults = %fx%f, want 200x150", s.DeadzoneWidth, s.DeadzoneHeight)
	}
}

func TestTopDownFollowLookahead(t *testing.T) {
	cam := NewCamera(800, 600)
	strategy := TopDownFollow{LeadFactor: 0.3}

	target := movingTarget{pos: Vec2{100, 100}, vel: Vec2{1, 0}}
	got := strategy.TargetPosition(cam, target, 1.0/60)
	// lead = vel * 50 * 0.3 = (15, 0)
	if !vecApproxEqual(got, Vec2{115, 100}, epsilon) {
		t.Errorf("got %v, want {115 100}", got)
	}
}

func TestTopDownFollowNoVelocityCapability(t *testing.T) {
	cam := NewCamera(800, 600)
	strategy := TopDownFollow{LeadFactor: 0.3}

	// StaticTarget has no Velocity; look-ahead degrades silently to zero.
	got := strategy.TargetPosition(cam, StaticTarget{X: 100, Y: 100}, 1.0/60)
	if !vecApproxEqual(got, Vec2{100, 100}, epsilon) {
		t.Errorf("got %v, want {100 100}", got)
	}
}

func TestModeRoundTrip(t *testing.T) {
	cam := NewCamera(800, 600)
	tests := []struct {
		mode Mode
	}{
		{ModeFixed},
		{ModeFollow},
		{ModePlatformer},
		{ModeTopDown},
	}
	for _, tt := range tests {
		cam.SetMode(tt.mode)
		if cam.Mode() != tt.mode {
			t.Errorf("Mode() = %v after SetMode(%v)", cam.Mode(), tt.mode)
		}
	}
}

func TestSetFollowStrategyUpdatesMode(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.SetFollowStrategy(NewPlatformerFollow(100, 100))
	if cam.Mode() != ModePlatformer {
		t.Errorf("Mode() = %v, want ModePlatformer", cam.Mode())
	}
	cam.SetFollowStrategy(TopDownFollow{LeadFactor: 0.2})
	if cam.Mode() != ModeTopDown {
		t.Errorf("Mode() = %v, want ModeTopDown", cam.Mode())
	}
}

func TestStrategySwapNoJump(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.SetPosition(Vec2{500, 500})
	before := cam.BasePosition()

	cam.SetFollowStrategy(TopDownFollow{LeadFactor: 0.3})
	if cam.BasePosition() != before {
		t.Errorf("strategy swap moved camera from %v to %v", before, cam.BasePosition())
	}
}
