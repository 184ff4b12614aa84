package vista

import (
	"math"
	"math/rand/v2"
)

// Effect is a time-bounded mutator of the camera's transient offset and
// rotation offset. Update advances internal state and reports whether the
// effect is still active; expired effects are removed without a final Apply.
// Apply adds the effect's contribution onto the camera, so simultaneous
// effects combine by summation.
type Effect interface {
	Update(dt float64) bool
	Apply(cam *Camera)
}

// ShakeKind selects which camera channels a ShakeEffect perturbs.
type ShakeKind uint8

const (
	ShakePositional ShakeKind = iota // offset only
	ShakeRotational                  // rotation offset only
	ShakeCombined                    // offset and rotation offset
)

const (
	// shakeOffsetScale is the max positional offset in pixels at intensity 1.
	shakeOffsetScale = 20.0
	// shakeRotationScale is the max rotation offset in radians at intensity 1
	// (about 5 degrees).
	shakeRotationScale = math.Pi / 36
)

// ShakeEffect produces a random camera offset each frame, with intensity
// decaying linearly to zero over a fixed duration.
type ShakeEffect struct {
	kind             ShakeKind
	initialIntensity float64
	intensity        float64
	duration         float64
	timeLeft         float64
}

// NewShakeEffect creates a shake with the given peak intensity (1.0 = full
// strength) lasting duration seconds.
func NewShakeEffect(intensity, duration float64, kind ShakeKind) *ShakeEffect {
	return &ShakeEffect{
		kind:             kind,
		initialIntensity: intensity,
		intensity:        intensity,
		duration:         duration,
		timeLeft:         duration,
	}
}

// Update decays the intensity linearly. Returns false once the cumulative
// elapsed time reaches the duration.
func (e *ShakeEffect) Update(dt float64) bool {
	e.timeLeft -= dt
	if e.timeLeft <= 0 {
		e.intensity = 0
		return false
	}
	e.intensity = e.initialIntensity * (e.timeLeft / e.duration)
	return true
}

// Apply adds a fresh random offset scaled by the current intensity.
func (e *ShakeEffect) Apply(cam *Camera) {
	if e.kind == ShakePositional || e.kind == ShakeCombined {
		cam.offset.X += randSigned() * e.intensity * shakeOffsetScale
		cam.offset.Y += randSigned() * e.intensity * shakeOffsetScale
	}
	if e.kind == ShakeRotational || e.kind == ShakeCombined {
		cam.rotationOffset += randSigned() * e.intensity * shakeRotationScale
	}
}

// TraumaEffect is an accumulating shake: trauma in [0, 1] decays at a
// constant rate per second, and the visible intensity is trauma squared,
// which falls off much more snappily than linear decay.
type TraumaEffect struct {
	trauma    float64
	decayRate float64
}

const defaultTraumaDecay = 1.5

// NewTraumaEffect creates a trauma effect with the given initial trauma,
// clamped to [0, 1]. decayRate is trauma lost per second; non-positive
// values use the default of 1.5.
func NewTraumaEffect(trauma, decayRate float64) *TraumaEffect {
	if decayRate <= 0 {
		decayRate = defaultTraumaDecay
	}
	e := &TraumaEffect{decayRate: decayRate}
	e.AddTrauma(trauma)
	return e
}

// AddTrauma accumulates trauma, clamped at 1.0.
func (e *TraumaEffect) AddTrauma(amount float64) {
	e.trauma = math.Min(1.0, math.Max(0, e.trauma+amount))
}

// Trauma returns the current trauma level.
func (e *TraumaEffect) Trauma() float64 {
	return e.trauma
}

// Update decays trauma toward zero. Returns false once trauma reaches zero,
// at which point the effect removes itself from the camera.
func (e *TraumaEffect) Update(dt float64) bool {
	e.trauma = math.Max(0, e.trauma-dt*e.decayRate)
	return e.trauma > 0
}

// Apply shakes position and rotation with intensity trauma².
func (e *TraumaEffect) Apply(cam *Camera) {
	intensity := e.trauma * e.trauma
	cam.offset.X += randSigned() * intensity * shakeOffsetScale
	cam.offset.Y += randSigned() * intensity * shakeOffsetScale
	cam.rotationOffset += randSigned() * intensity * shakeRotationScale
}

// randSigned returns a uniform random value in [-1, 1).
func randSigned() float64 {
	return rand.Float64()*2 - 1
}
