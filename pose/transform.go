package pose

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a camera pose in 3D space
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Identity returns the transform at the origin with no rotation
func Identity() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// New creates a transform from a position and a rotation
func New(position mgl32.Vec3, rotation mgl32.Quat) Transform {
	return Transform{Position: position, Rotation: rotation}
}

// Right is the rotated +X axis
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up is the rotated +Y axis
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Forward is the rotated forward axis of the given handedness: -Z for right-handed, +Z for left-handed
func (t Transform) Forward(h Handedness) mgl32.Vec3 {
	return t.Rotation.Rotate(h.ForwardAxis())
}

// PositionRotation splits the transform into its components
func (t Transform) PositionRotation() (mgl32.Vec3, mgl32.Quat) {
	return t.Position, t.Rotation
}
