// Package smoothing implements the exponential smoother shared by the rig drivers.
//
// A Smoothed value remembers the last output and, on every call, moves it towards
// a new target by a fraction that depends on the elapsed time:
//
//	interpT  = 1 - exp(-8 * dt / max(smoothness, 1e-5))
//	smoothed = interpolate(previous, target, interpT)
//
// Many small steps follow roughly the same curve as one large step, so the
// result does not depend much on the frame rate. The very first call seeds the
// memory with the target itself, so a freshly built rig does not snap from the
// origin.
//
// Predictive smoothing returns interpolate(target, smoothed, -1) instead: the
// smoothed lag reflected through the target. A later smoothing stage in the
// chain then pulls the result back towards the target, giving a follower that
// is soft but does not trail far behind.
package smoothing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SmoothnessMult is an empirical factor that makes smoothness values around 1 look good
	SmoothnessMult = 8.0

	// MinSmoothness floors the smoothness so the exponent never divides by zero
	MinSmoothness = 1e-5

	// PredictiveScale is the output offset scale that extrapolates past the target
	PredictiveScale = -1.0
)

// Interpolator blends from towards to; t=0 returns from, t=1 returns to
type Interpolator[T any] func(from, to T, t float32) T

// Params describes one smoothing step
type Params struct {
	Smoothness float32
	// OutputOffsetScale is 1 for plain smoothing and PredictiveScale for look-ahead.
	// 0 is read as 1.
	OutputOffsetScale float32
	DeltaTime         float32
}

// OutputScale returns the offset scale for the predictive flag
func OutputScale(predictive bool) float32 {
	if predictive {
		return PredictiveScale
	}
	return 1
}

// InterpT returns the blend factor for one step of dt seconds
func InterpT(smoothness, dt float32) float32 {
	s := float64(smoothness)
	if !(s >= MinSmoothness) {
		s = MinSmoothness
	}
	return float32(1 - math.Exp(-SmoothnessMult*float64(dt)/s))
}

// Smoothed holds the smoothing history of a single value.
// The zero value of Smoothed[mgl32.Vec3] and Smoothed[mgl32.Quat] is ready to use.
type Smoothed[T any] struct {
	interpolate Interpolator[T]
	prev        T
	seeded      bool
}

// New creates an empty smoother using the given interpolation
func New[T any](interpolate Interpolator[T]) *Smoothed[T] {
	return &Smoothed[T]{interpolate: interpolate}
}

// NewVec3 smooths positions with linear interpolation
func NewVec3() *Smoothed[mgl32.Vec3] {
	return New[mgl32.Vec3](LerpVec3)
}

// NewQuat smooths rotations with normalized linear interpolation
func NewQuat() *Smoothed[mgl32.Quat] {
	return New[mgl32.Quat](NlerpQuat)
}

// Towards advances the smoothed value towards target and returns the output for this step
func (s *Smoothed[T]) Towards(target T, params Params) T {
	interpT := InterpT(params.Smoothness, params.DeltaTime)

	prev := target
	if s.seeded {
		prev = s.prev
	}
	interpolate := s.interpolator()
	smooth := interpolate(prev, target, interpT)

	s.prev = smooth
	s.seeded = true

	if scale := params.OutputOffsetScale; scale != 0 && scale != 1 {
		return interpolate(target, smooth, scale)
	}
	return smooth
}

func (s *Smoothed[T]) interpolator() Interpolator[T] {
	if s.interpolate != nil {
		return s.interpolate
	}

	switch any(s.prev).(type) {
	case mgl32.Vec3:
		s.interpolate = any(Interpolator[mgl32.Vec3](LerpVec3)).(Interpolator[T])
	case mgl32.Quat:
		s.interpolate = any(Interpolator[mgl32.Quat](NlerpQuat)).(Interpolator[T])
	default:
		panic("smoothing: no interpolator for this value type")
	}
	return s.interpolate
}

// Value returns the last smoothed value, or false before the first step
func (s *Smoothed[T]) Value() (T, bool) {
	return s.prev, s.seeded
}

// Reset forgets the history; the next step seeds from its target again
func (s *Smoothed[T]) Reset() {
	var zero T
	s.prev = zero
	s.seeded = false
}

// LerpVec3 is a plain linear interpolation; t outside [0, 1] extrapolates
func LerpVec3(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// NlerpQuat blends along the shorter arc and renormalizes
func NlerpQuat(from, to mgl32.Quat, t float32) mgl32.Quat {
	from = from.Normalize()
	to = to.Normalize()
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}

	return mgl32.QuatLerp(from, to, t).Normalize()
}
