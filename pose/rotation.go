package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minLength is the shortest vector TryNormalize accepts
const minLength = 1e-6

// gimbalThreshold is the |sin(pitch)| above which yaw and roll become indistinguishable
const gimbalThreshold = 0.99999

// TryNormalize returns the unit vector along v, or false if v is too short or not finite
func TryNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	length := float64(v.Len())
	if math.IsNaN(length) || math.IsInf(length, 0) || length < minLength {
		return mgl32.Vec3{}, false
	}

	return v.Mul(float32(1 / length)), true
}

// LookAt returns the rotation whose forward axis points along forward, keeping +Y as the up hint.
// A zero forward vector, or one parallel to +Y, yields the identity rotation.
func LookAt(forward mgl32.Vec3, h Handedness) mgl32.Quat {
	forward, ok := TryNormalize(forward)
	if !ok {
		return mgl32.QuatIdent()
	}

	right, ok := TryNormalize(h.RightFromUpAndForward(mgl32.Vec3{0, 1, 0}, forward))
	if !ok {
		return mgl32.QuatIdent()
	}
	up := h.UpFromRightAndForward(right, forward)

	basis := mgl32.Mat3FromCols(right, up, forward.Mul(h.ZSign()))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}

// FromYawPitchRoll composes Ry(yaw) * Rx(pitch) * Rz(roll), angles in radians
func FromYawPitchRoll(yaw, pitch, roll float32) mgl32.Quat {
	return mgl32.AnglesToQuat(yaw, pitch, roll, mgl32.YXZ).Normalize()
}

// EulerYXZ decomposes a rotation into the angles FromYawPitchRoll consumes, in radians.
// At ±90° pitch the roll is folded into the yaw.
func EulerYXZ(q mgl32.Quat) (yaw, pitch, roll float32) {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	sinPitch := math.Max(-1, math.Min(1, -2*(y*z-w*x)))
	pitch = float32(math.Asin(sinPitch))

	if math.Abs(sinPitch) > gimbalThreshold {
		yaw = float32(math.Atan2(-2*(x*z-w*y), 1-2*(y*y+z*z)))
		return yaw, pitch, 0
	}

	yaw = float32(math.Atan2(2*(x*z+w*y), 1-2*(x*x+y*y)))
	roll = float32(math.Atan2(2*(x*y+w*z), 1-2*(x*x+z*z)))
	return yaw, pitch, roll
}
