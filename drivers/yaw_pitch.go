package drivers

import (
	"math"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// YawPeriod is the yaw wrap-around. A quaternion covers 720° before repeating,
	// so yaw is kept in [0, 720) rather than [0, 360).
	YawPeriod = 720.0

	MaxPitch = 90.0
	MinPitch = -90.0
)

// YawPitch calculates the camera rotation from yaw and pitch angles, in degrees.
//
// Angles follow the right-hand rule around +Y (yaw) then +X (pitch), with no roll:
// a negative yaw turns the camera right and a positive pitch tilts it up.
// The parent position passes through.
type YawPitch struct {
	// [0, 720)
	YawDegrees float32
	// [-90, 90]
	PitchDegrees float32
}

// NewYawPitch creates a camera looking down the forward axis
func NewYawPitch() *YawPitch {
	return &YawPitch{}
}

// WithYawPitch sets both angles and returns the driver, for use while building a rig
func (d *YawPitch) WithYawPitch(yawDegrees, pitchDegrees float32) *YawPitch {
	d.SetYawPitch(yawDegrees, pitchDegrees)
	return d
}

// WithRotationQuat initializes the angles from a rotation, ignoring any roll
func (d *YawPitch) WithRotationQuat(rotation mgl32.Quat) *YawPitch {
	d.SetRotationQuat(rotation)
	return d
}

// SetYawPitch sets absolute angles, wrapping yaw and clamping pitch
func (d *YawPitch) SetYawPitch(yawDegrees, pitchDegrees float32) {
	d.YawDegrees = wrapYaw(yawDegrees)
	d.PitchDegrees = clampPitch(pitchDegrees)
}

// RotateYawPitch rotates by the given deltas, in degrees
func (d *YawPitch) RotateYawPitch(yawDegrees, pitchDegrees float32) {
	d.SetYawPitch(d.YawDegrees+yawDegrees, d.PitchDegrees+pitchDegrees)
}

// SetRotationQuat sets the angles from a rotation, ignoring any roll
func (d *YawPitch) SetRotationQuat(rotation mgl32.Quat) {
	yaw, pitch, _ := pose.EulerYXZ(rotation)
	d.SetYawPitch(mgl32.RadToDeg(yaw), mgl32.RadToDeg(pitch))
}

func (d *YawPitch) Update(params camrig.UpdateParams) pose.Transform {
	return pose.Transform{
		Position: params.Parent().Position,
		Rotation: pose.FromYawPitchRoll(
			mgl32.DegToRad(d.YawDegrees),
			mgl32.DegToRad(d.PitchDegrees),
			0,
		),
	}
}

func wrapYaw(degrees float32) float32 {
	wrapped := math.Mod(float64(degrees), YawPeriod)
	if math.IsNaN(wrapped) {
		return 0
	}
	if wrapped < 0 {
		wrapped += YawPeriod
	}
	// -1e-9 + 720 rounds to 720 in float32
	if float32(wrapped) >= YawPeriod {
		return 0
	}
	return float32(wrapped)
}

func clampPitch(degrees float32) float32 {
	if math.IsNaN(float64(degrees)) {
		return 0
	}
	return mgl32.Clamp(degrees, MinPitch, MaxPitch)
}
