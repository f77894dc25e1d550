package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Position directly sets the position of the camera
type Position struct {
	Position mgl32.Vec3
}

func NewPosition(position mgl32.Vec3) *Position {
	return &Position{Position: position}
}

// Translate adds the vector to the position
func (d *Position) Translate(move mgl32.Vec3) {
	d.Position = d.Position.Add(move)
}

func (d *Position) Update(params camrig.UpdateParams) pose.Transform {
	return pose.Transform{
		Position: d.Position,
		Rotation: params.Parent().Rotation,
	}
}

// Positional sets both position and rotation, ignoring the parent
type Positional struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func NewPositional(position mgl32.Vec3) *Positional {
	return &Positional{
		Position: position,
		Rotation: mgl32.QuatIdent(),
	}
}

func (d *Positional) Translate(move mgl32.Vec3) {
	d.Position = d.Position.Add(move)
}

func (d *Positional) Set(position mgl32.Vec3, rotation mgl32.Quat) {
	d.Position = position
	d.Rotation = rotation
}

func (d *Positional) Update(_ camrig.UpdateParams) pose.Transform {
	return pose.Transform{
		Position: d.Position,
		Rotation: d.Rotation.Normalize(),
	}
}
