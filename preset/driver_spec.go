package preset

import (
	"fmt"
	"strings"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/drivers"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	KindPosition     = "position"
	KindRotation     = "rotation"
	KindPositional   = "positional"
	KindArm          = "arm"
	KindYawPitch     = "yaw_pitch"
	KindLookAt       = "look_at"
	KindSmooth       = "smooth"
	KindLockPosition = "lock_position"
	KindLockRotation = "lock_rotation"
)

// DriverSpec is one entry of the drivers list. Which fields apply depends on Kind.
type DriverSpec struct {
	Kind string `yaml:"kind"`

	// position, positional
	Position []float32 `yaml:"position,omitempty"`
	// rotation, positional, yaw_pitch; quaternion as [x, y, z, w]
	Rotation []float32 `yaml:"rotation,omitempty"`
	// arm
	Offset []float32 `yaml:"offset,omitempty"`
	// look_at
	Target []float32 `yaml:"target,omitempty"`
	// lock_position
	Values []float32 `yaml:"values,omitempty"`
	// lock_position, lock_rotation
	Axes []string `yaml:"axes,omitempty"`

	// yaw_pitch, in degrees
	Yaw   float32 `yaml:"yaw,omitempty"`
	Pitch float32 `yaml:"pitch,omitempty"`

	// look_at
	Smoothness float32 `yaml:"smoothness,omitempty"`
	// smooth
	PositionSmoothness float32 `yaml:"position_smoothness,omitempty"`
	RotationSmoothness float32 `yaml:"rotation_smoothness,omitempty"`
	// look_at, smooth
	Predictive bool `yaml:"predictive,omitempty"`
}

// Driver creates a fresh driver from the entry
func (s DriverSpec) Driver() (camrig.Driver, error) {
	switch s.Kind {
	case KindPosition:
		position, err := vec3("position", s.Position)
		if err != nil {
			return nil, err
		}
		return drivers.NewPosition(position), nil

	case KindRotation:
		rotation, err := quat("rotation", s.Rotation)
		if err != nil {
			return nil, err
		}
		return drivers.NewRotation(rotation), nil

	case KindPositional:
		position, err := vec3("position", s.Position)
		if err != nil {
			return nil, err
		}
		rotation, err := quat("rotation", s.Rotation)
		if err != nil {
			return nil, err
		}
		driver := drivers.NewPositional(position)
		driver.Rotation = rotation
		return driver, nil

	case KindArm:
		offset, err := vec3("offset", s.Offset)
		if err != nil {
			return nil, err
		}
		return drivers.NewArm(offset), nil

	case KindYawPitch:
		driver := drivers.NewYawPitch()
		if s.Rotation != nil {
			rotation, err := quat("rotation", s.Rotation)
			if err != nil {
				return nil, err
			}
			return driver.WithRotationQuat(rotation), nil
		}
		return driver.WithYawPitch(s.Yaw, s.Pitch), nil

	case KindLookAt:
		target, err := vec3("target", s.Target)
		if err != nil {
			return nil, err
		}
		return drivers.NewLookAt(target).
			WithSmoothness(s.Smoothness).
			WithPredictive(s.Predictive), nil

	case KindSmooth:
		return drivers.NewSmoothPositionRotation(s.PositionSmoothness, s.RotationSmoothness).
			WithPredictive(s.Predictive), nil

	case KindLockPosition:
		axes, err := parseAxes(s.Axes)
		if err != nil {
			return nil, err
		}
		values, err := vec3("values", s.Values)
		if err != nil {
			return nil, err
		}
		return drivers.NewLockPosition(axes...).WithValues(values), nil

	case KindLockRotation:
		axes, err := parseAxes(s.Axes)
		if err != nil {
			return nil, err
		}
		return drivers.NewLockRotation(axes...), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, s.Kind)
	}
}

// vec3 reads an optional [x, y, z] list; a missing list is the zero vector
func vec3(field string, values []float32) (mgl32.Vec3, error) {
	switch len(values) {
	case 0:
		return mgl32.Vec3{}, nil
	case 3:
		return mgl32.Vec3{values[0], values[1], values[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidVector, field, len(values))
	}
}

// quat reads an optional [x, y, z, w] list; a missing list is the identity
func quat(field string, values []float32) (mgl32.Quat, error) {
	switch len(values) {
	case 0:
		return mgl32.QuatIdent(), nil
	case 4:
		q := mgl32.Quat{W: values[3], V: mgl32.Vec3{values[0], values[1], values[2]}}
		if q.Len() == 0 {
			return mgl32.Quat{}, fmt.Errorf("%w: %s is a zero quaternion", ErrInvalidVector, field)
		}
		return q.Normalize(), nil
	default:
		return mgl32.Quat{}, fmt.Errorf("%w: %s needs 4 components, got %d", ErrInvalidVector, field, len(values))
	}
}

func parseAxes(names []string) ([]drivers.Axis, error) {
	axes := make([]drivers.Axis, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(name) {
		case "x":
			axes = append(axes, drivers.AxisX)
		case "y":
			axes = append(axes, drivers.AxisY)
		case "z":
			axes = append(axes, drivers.AxisZ)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidAxis, name)
		}
	}

	return axes, nil
}
