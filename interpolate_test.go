package vista

import "testing"

// Easing goes through float32 gween functions, so allow a looser tolerance
// than the float64 camera math.
const easeEps = 1e-3

func TestInterpolateEndpoints(t *testing.T) {
	kinds := []struct {
		name string
		kind Interpolation
	}{
		{"Linear", Linear},
		{"Smoothstep", Smoothstep},
		{"QuadraticIn", QuadraticIn},
		{"QuadraticOut", QuadraticOut},
		{"QuadraticInOut", QuadraticInOut},
		{"CubicIn", CubicIn},
		{"CubicOut", CubicOut},
		{"CubicInOut", CubicInOut},
	}
	for _, tt := range kinds {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(10, 20, 0, tt.kind); !approxEqual(got, 10, easeEps) {
				t.Errorf("t=0: got %f, want 10", got)
			}
			if got := Interpolate(10, 20, 1, tt.kind); !approxEqual(got, 20, easeEps) {
				t.Errorf("t=1: got %f, want 20", got)
			}
		})
	}
}

func TestInterpolateMidpoints(t *testing.T) {
	// Standard easing polynomial values at t=0.5 over [0, 1].
	tests := []struct {
		name string
		kind Interpolation
		want float64
	}{
		{"Linear", Linear, 0.5},
		{"Smoothstep", Smoothstep, 0.5},
		{"QuadraticIn", QuadraticIn, 0.25},
		{"QuadraticOut", QuadraticOut, 0.75},
		{"QuadraticInOut", QuadraticInOut, 0.5},
		{"CubicIn", CubicIn, 0.125},
		{"CubicOut", CubicOut, 0.875},
		{"CubicInOut", CubicInOut, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(0, 1, 0.5, tt.kind)
			if !approxEqual(got, tt.want, easeEps) {
				t.Errorf("Interpolate(0, 1, 0.5, %s) = %f, want %f", tt.name, got, tt.want)
			}
		})
	}
}

func TestInterpolateQuarterPoints(t *testing.T) {
	// Spot-check the polynomial shapes off the midpoint.
	tests := []struct {
		name string
		kind Interpolation
		t    float64
		want float64
	}{
		{"QuadraticIn t=0.25", QuadraticIn, 0.25, 0.0625},
		{"CubicIn t=0.25", CubicIn, 0.25, 0.015625},
		{"CubicOut t=0.75", CubicOut, 0.75, 0.984375},
		{"Smoothstep t=0.25", Smoothstep, 0.25, 0.15625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(0, 1, tt.t, tt.kind)
			if !approxEqual(got, tt.want, easeEps) {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestInterpolateNoClamping(t *testing.T) {
	// t outside [0,1] extrapolates; the function deliberately does not clamp.
	if got := Interpolate(0, 10, 2, Linear); !approxEqual(got, 20, easeEps) {
		t.Errorf("t=2 linear: got %f, want 20 (extrapolated)", got)
	}
	if got := Interpolate(0, 10, -1, Linear); !approxEqual(got, -10, easeEps) {
		t.Errorf("t=-1 linear: got %f, want -10 (extrapolated)", got)
	}
}

func TestInterpolateVec2ComponentWise(t *testing.T) {
	start := Vec2{0, 100}
	end := Vec2{10, 200}
	got := InterpolateVec2(start, end, 0.5, QuadraticIn)
	want := Vec2{
		Interpolate(0, 10, 0.5, QuadraticIn),
		Interpolate(100, 200, 0.5, QuadraticIn),
	}
	if !vecApproxEqual(got, want, easeEps) {
		t.Errorf("InterpolateVec2 = %v, want %v", got, want)
	}
}

func TestInterpolateNegativeRange(t *testing.T) {
	got := Interpolate(50, -50, 0.5, Linear)
	if !approxEqual(got, 0, easeEps) {
		t.Errorf("Interpolate(50, -50, 0.5) = %f, want 0", got)
	}
}
