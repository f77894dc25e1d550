package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/akmonengine/camrig/smoothing"
	"github.com/go-gl/mathgl/mgl32"
)

// LookAt rotates the camera to point at a world-space position.
//
// The tracked target can be smoothed, and with Predictive the camera looks
// ahead of it. Chained after a Smooth driver this gives a camera that follows
// an object softly without lagging far behind.
type LookAt struct {
	// Target is the world-space position to look at
	Target mgl32.Vec3
	// Smoothness of the target tracking; 0 tracks it exactly
	Smoothness float32
	Predictive bool

	smoothedTarget smoothing.Smoothed[mgl32.Vec3]
}

func NewLookAt(target mgl32.Vec3) *LookAt {
	return &LookAt{Target: target}
}

// WithSmoothness sets the target tracking smoothness
func (d *LookAt) WithSmoothness(smoothness float32) *LookAt {
	d.Smoothness = smoothness
	return d
}

// WithPredictive makes the camera look ahead of the smoothed target
func (d *LookAt) WithPredictive(predictive bool) *LookAt {
	d.Predictive = predictive
	return d
}

// ResetTracking drops the smoothing history so the next update looks straight at Target
func (d *LookAt) ResetTracking() {
	d.smoothedTarget.Reset()
}

func (d *LookAt) Update(params camrig.UpdateParams) pose.Transform {
	target := d.smoothedTarget.Towards(d.Target, smoothing.Params{
		Smoothness:        d.Smoothness,
		OutputOffsetScale: smoothing.OutputScale(d.Predictive),
		DeltaTime:         params.DeltaTime(),
	})

	parent := params.Parent()
	return pose.Transform{
		Position: parent.Position,
		Rotation: pose.LookAt(target.Sub(parent.Position), params.Handedness()),
	}
}
