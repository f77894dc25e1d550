package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/akmonengine/camrig/smoothing"
	"github.com/go-gl/mathgl/mgl32"
)

// Smooth exponentially smooths the parent position and rotation.
// A smoothness of 0 lets that channel through unsmoothed.
type Smooth struct {
	PositionSmoothness float32
	RotationSmoothness float32
	// Predictive reverses the smoothing so the output leads the parent.
	// Followed by another Smooth, this yields a soft yet responsive follower.
	Predictive bool

	smoothedPosition smoothing.Smoothed[mgl32.Vec3]
	smoothedRotation smoothing.Smoothed[mgl32.Quat]
}

// NewSmooth smooths both channels with a smoothness of 1
func NewSmooth() *Smooth {
	return NewSmoothPositionRotation(1, 1)
}

// NewSmoothPosition only smooths the position
func NewSmoothPosition(positionSmoothness float32) *Smooth {
	return &Smooth{PositionSmoothness: positionSmoothness}
}

// NewSmoothRotation only smooths the rotation
func NewSmoothRotation(rotationSmoothness float32) *Smooth {
	return &Smooth{RotationSmoothness: rotationSmoothness}
}

func NewSmoothPositionRotation(positionSmoothness, rotationSmoothness float32) *Smooth {
	return &Smooth{
		PositionSmoothness: positionSmoothness,
		RotationSmoothness: rotationSmoothness,
	}
}

func (d *Smooth) WithPredictive(predictive bool) *Smooth {
	d.Predictive = predictive
	return d
}

// Reset drops the smoothing history, e.g. after the followed object teleports
func (d *Smooth) Reset() {
	d.smoothedPosition.Reset()
	d.smoothedRotation.Reset()
}

func (d *Smooth) Update(params camrig.UpdateParams) pose.Transform {
	parent := params.Parent()
	scale := smoothing.OutputScale(d.Predictive)

	position := d.smoothedPosition.Towards(parent.Position, smoothing.Params{
		Smoothness:        d.PositionSmoothness,
		OutputOffsetScale: scale,
		DeltaTime:         params.DeltaTime(),
	})
	rotation := d.smoothedRotation.Towards(parent.Rotation, smoothing.Params{
		Smoothness:        d.RotationSmoothness,
		OutputOffsetScale: scale,
		DeltaTime:         params.DeltaTime(),
	})

	return pose.Transform{Position: position, Rotation: rotation}
}
