package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Arm offsets the camera along a vector expressed in the parent's coordinate space
type Arm struct {
	Offset mgl32.Vec3
}

func NewArm(offset mgl32.Vec3) *Arm {
	return &Arm{Offset: offset}
}

func (d *Arm) Update(params camrig.UpdateParams) pose.Transform {
	parent := params.Parent()

	return pose.Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(d.Offset)),
		Rotation: parent.Rotation,
	}
}
