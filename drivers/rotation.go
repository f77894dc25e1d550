package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotation directly sets the rotation of the camera
type Rotation struct {
	Rotation mgl32.Quat
}

func NewRotation(rotation mgl32.Quat) *Rotation {
	return &Rotation{Rotation: rotation}
}

func (d *Rotation) Update(params camrig.UpdateParams) pose.Transform {
	return pose.Transform{
		Position: params.Parent().Position,
		Rotation: d.Rotation.Normalize(),
	}
}
