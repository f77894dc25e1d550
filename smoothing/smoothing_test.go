package smoothing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// =============================================================================
// InterpT Tests
// =============================================================================

func TestInterpT(t *testing.T) {
	tests := []struct {
		name       string
		smoothness float32
		dt         float32
		want       float32
	}{
		{"zero dt", 1.0, 0, 0},
		{"one frame", 1.0, 1.0 / 60.0, float32(1 - math.Exp(-8.0/60.0))},
		{"slower", 2.0, 0.5, float32(1 - math.Exp(-2.0))},
		{"zero smoothness snaps", 0, 1.0 / 60.0, 1},
		{"negative smoothness floored", -3, 1.0 / 60.0, 1},
		{"nan smoothness floored", float32(math.NaN()), 1.0 / 60.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpT(tt.smoothness, tt.dt)
			if math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
				t.Fatalf("InterpT = %v, want finite", got)
			}
			if !almostEqual(got, tt.want, 1e-6) {
				t.Errorf("InterpT(%v, %v) = %v, want %v", tt.smoothness, tt.dt, got, tt.want)
			}
		})
	}
}

func TestOutputScale(t *testing.T) {
	if OutputScale(false) != 1 {
		t.Errorf("OutputScale(false) = %v, want 1", OutputScale(false))
	}
	if OutputScale(true) != PredictiveScale {
		t.Errorf("OutputScale(true) = %v, want %v", OutputScale(true), PredictiveScale)
	}
}

// =============================================================================
// Smoothed Tests
// =============================================================================

func TestSmoothed_ZeroOutputScaleIsPlain(t *testing.T) {
	plain, unset := NewVec3(), NewVec3()
	plain.Towards(mgl32.Vec3{}, Params{Smoothness: 1, OutputOffsetScale: 1})
	unset.Towards(mgl32.Vec3{}, Params{Smoothness: 1})

	target := mgl32.Vec3{10, 0, 0}
	want := plain.Towards(target, Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0})
	got := unset.Towards(target, Params{Smoothness: 1, DeltaTime: 1.0 / 60.0})

	if got != want {
		t.Errorf("Towards with zero OutputOffsetScale = %v, want plain smoothing %v", got, want)
	}
	if got.X() <= 0 || got.X() >= 10 {
		t.Errorf("Towards = %v, want partway to %v", got, target)
	}
}

func TestSmoothed_NaNSmoothnessStaysFinite(t *testing.T) {
	s := NewVec3()
	s.Towards(mgl32.Vec3{}, Params{Smoothness: 1})

	got := s.Towards(mgl32.Vec3{10, 0, 0}, Params{Smoothness: float32(math.NaN()), DeltaTime: 1.0 / 60.0})
	for _, c := range got {
		if math.IsNaN(float64(c)) {
			t.Fatalf("Towards = %v, want finite", got)
		}
	}
}

func TestSmoothed_FirstCallSeedsTarget(t *testing.T) {
	s := NewVec3()
	target := mgl32.Vec3{3, -2, 7}

	if _, ok := s.Value(); ok {
		t.Fatal("fresh smoother should not have a value")
	}

	got := s.Towards(target, Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0})
	if got != target {
		t.Errorf("first Towards = %v, want %v", got, target)
	}

	v, ok := s.Value()
	if !ok || v != target {
		t.Errorf("Value = %v, %v, want %v, true", v, ok, target)
	}
}

func TestSmoothed_ZeroDeltaIsIdempotent(t *testing.T) {
	s := NewVec3()
	params := Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: 1.0 / 30.0}

	s.Towards(mgl32.Vec3{0, 0, 0}, params)
	prev := s.Towards(mgl32.Vec3{10, 0, 0}, params)

	params.DeltaTime = 0
	for i := 0; i < 5; i++ {
		got := s.Towards(mgl32.Vec3{-4, 8, 1}, params)
		if got != prev {
			t.Fatalf("step %d: Towards with dt=0 = %v, want %v", i, got, prev)
		}
	}
}

func TestSmoothed_ConvergesWithoutOvershoot(t *testing.T) {
	s := NewVec3()
	params := Params{Smoothness: 1.5, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0}
	target := mgl32.Vec3{10, 5, -20}

	s.Towards(mgl32.Vec3{}, params)

	prevDist := target.Len()
	for i := 0; i < 600; i++ {
		got := s.Towards(target, params)
		dist := target.Sub(got).Len()

		if dist > prevDist {
			t.Fatalf("step %d: distance grew from %v to %v", i, prevDist, dist)
		}
		// Moving along the segment towards the target, never past it
		if got.Dot(target) > target.Dot(target)+1e-3 {
			t.Fatalf("step %d: overshot target: %v", i, got)
		}
		prevDist = dist
	}

	if prevDist > 1e-3 {
		t.Errorf("distance after 10s = %v, want ~0", prevDist)
	}
}

func TestSmoothed_FramerateInsensitive(t *testing.T) {
	target := mgl32.Vec3{1, 0, 0}
	run := func(steps int, dt float32) mgl32.Vec3 {
		s := NewVec3()
		s.Towards(mgl32.Vec3{}, Params{Smoothness: 1, OutputOffsetScale: 1})
		var out mgl32.Vec3
		for i := 0; i < steps; i++ {
			out = s.Towards(target, Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: dt})
		}
		return out
	}

	at30 := run(15, 1.0/30.0)
	at120 := run(60, 1.0/120.0)

	if !vec3AlmostEqual(at30, at120, 1e-4) {
		t.Errorf("half a second at 30fps = %v, at 120fps = %v", at30, at120)
	}
}

func TestSmoothed_Predictive(t *testing.T) {
	s := NewVec3()
	params := Params{Smoothness: 1, OutputOffsetScale: PredictiveScale, DeltaTime: 1.0 / 60.0}

	s.Towards(mgl32.Vec3{}, params)
	target := mgl32.Vec3{1, 0, 0}
	got := s.Towards(target, params)

	smoothed, _ := s.Value()
	// Reflection of the smoothed value through the target
	want := target.Mul(2).Sub(smoothed)
	if !vec3AlmostEqual(got, want, 1e-6) {
		t.Errorf("predictive output = %v, want %v", got, want)
	}
	if got.X() <= target.X() {
		t.Errorf("predictive output %v should lead the target %v", got, target)
	}
}

func TestSmoothed_Reset(t *testing.T) {
	s := NewVec3()
	params := Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0}

	s.Towards(mgl32.Vec3{}, params)
	s.Towards(mgl32.Vec3{5, 5, 5}, params)
	s.Reset()

	target := mgl32.Vec3{-1, -1, -1}
	if got := s.Towards(target, params); got != target {
		t.Errorf("Towards after Reset = %v, want %v", got, target)
	}
}

func TestSmoothed_ZeroValueUsable(t *testing.T) {
	var position Smoothed[mgl32.Vec3]
	var rotation Smoothed[mgl32.Quat]
	params := Params{Smoothness: 1, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0}

	if got := position.Towards(mgl32.Vec3{1, 2, 3}, params); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("zero Smoothed[Vec3] first step = %v", got)
	}
	q := mgl32.QuatRotate(1, mgl32.Vec3{0, 1, 0})
	if got := rotation.Towards(q, params); !quatAlmostEqual(got, q, 1e-6) {
		t.Errorf("zero Smoothed[Quat] first step = %v, want %v", got, q)
	}
}

func TestSmoothed_RotationStaysUnit(t *testing.T) {
	s := NewQuat()
	params := Params{Smoothness: 0.8, OutputOffsetScale: 1, DeltaTime: 1.0 / 60.0}

	targets := []mgl32.Quat{
		mgl32.QuatIdent(),
		mgl32.QuatRotate(3, mgl32.Vec3{0, 1, 0}),
		mgl32.QuatRotate(-2, mgl32.Vec3{1, 0, 0}),
		mgl32.QuatRotate(1.3, mgl32.Vec3{1, 1, 0}.Normalize()),
	}

	for _, predictive := range []bool{false, true} {
		params.OutputOffsetScale = OutputScale(predictive)
		for i := 0; i < 200; i++ {
			got := s.Towards(targets[i%len(targets)], params)
			if !almostEqual(got.Len(), 1, 1e-5) {
				t.Fatalf("predictive=%v step %d: |q| = %v", predictive, i, got.Len())
			}
		}
	}
}

// =============================================================================
// Interpolation Tests
// =============================================================================

func TestLerpVec3(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{2, 4, -6}

	tests := []struct {
		t    float32
		want mgl32.Vec3
	}{
		{0, a},
		{1, b},
		{0.5, mgl32.Vec3{1, 2, -3}},
		{-1, mgl32.Vec3{-2, -4, 6}},
	}

	for _, tt := range tests {
		if got := LerpVec3(a, b, tt.t); !vec3AlmostEqual(got, tt.want, 1e-6) {
			t.Errorf("LerpVec3(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNlerpQuat_ShortestArc(t *testing.T) {
	from := mgl32.QuatRotate(mgl32.DegToRad(350), mgl32.Vec3{0, 1, 0})
	to := mgl32.QuatRotate(mgl32.DegToRad(10), mgl32.Vec3{0, 1, 0})

	mid := NlerpQuat(from, to, 0.5)
	// The short way from 350° to 10° passes through 0°
	forward := mid.Rotate(mgl32.Vec3{0, 0, -1})
	if !vec3AlmostEqual(forward, mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Errorf("midpoint forward = %v, want (0, 0, -1)", forward)
	}
}

func TestNlerpQuat_Endpoints(t *testing.T) {
	from := mgl32.QuatRotate(0.3, mgl32.Vec3{1, 0, 0})
	to := mgl32.QuatRotate(1.1, mgl32.Vec3{0, 0, 1})

	if got := NlerpQuat(from, to, 0); !quatAlmostEqual(got, from, 1e-6) {
		t.Errorf("t=0: %v, want %v", got, from)
	}
	if got := NlerpQuat(from, to, 1); !quatAlmostEqual(got, to, 1e-6) {
		t.Errorf("t=1: %v, want %v", got, to)
	}
}

func almostEqual(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

func vec3AlmostEqual(a, b mgl32.Vec3, epsilon float32) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

func quatAlmostEqual(a, b mgl32.Quat, epsilon float32) bool {
	return almostEqual(a.W, b.W, epsilon) &&
		almostEqual(a.V.X(), b.V.X(), epsilon) &&
		almostEqual(a.V.Y(), b.V.Y(), epsilon) &&
		almostEqual(a.V.Z(), b.V.Z(), epsilon)
}
