package pose

import "github.com/go-gl/mathgl/mgl32"

// Handedness selects which rotated Z direction is "forward".
// The zero value is RightHanded.
type Handedness int

const (
	// RightHanded looks down -Z, as in OpenGL
	RightHanded Handedness = iota
	// LeftHanded looks down +Z, as in Direct3D
	LeftHanded
)

// ZSign is the sign of the Z component of the forward axis
func (h Handedness) ZSign() float32 {
	if h == LeftHanded {
		return 1
	}
	return -1
}

func (h Handedness) IsRightHanded() bool {
	return h != LeftHanded
}

// ForwardAxis is the unrotated forward direction
func (h Handedness) ForwardAxis() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, h.ZSign()}
}

// RightFromUpAndForward derives the right vector from an up hint and a forward vector.
// The result is not normalized.
func (h Handedness) RightFromUpAndForward(up, forward mgl32.Vec3) mgl32.Vec3 {
	if h.IsRightHanded() {
		return forward.Cross(up)
	}
	return up.Cross(forward)
}

// UpFromRightAndForward completes an orthonormal basis from unit right and forward vectors
func (h Handedness) UpFromRightAndForward(right, forward mgl32.Vec3) mgl32.Vec3 {
	if h.IsRightHanded() {
		return right.Cross(forward)
	}
	return forward.Cross(right)
}

func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "right"
	case LeftHanded:
		return "left"
	default:
		return "unknown"
	}
}
