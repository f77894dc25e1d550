package drivers

import (
	"strings"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
)

// Axis is a set of world axes
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ

	AxisNone Axis = 0
	AxisAll       = AxisX | AxisY | AxisZ
)

// Has reports whether every axis of other is in the set
func (a Axis) Has(other Axis) bool {
	return a&other == other
}

func (a Axis) String() string {
	if a == AxisNone {
		return "none"
	}

	var names []string
	for _, axis := range []struct {
		axis Axis
		name string
	}{{AxisX, "x"}, {AxisY, "y"}, {AxisZ, "z"}} {
		if a.Has(axis.axis) {
			names = append(names, axis.name)
		}
	}
	return strings.Join(names, "|")
}

func combine(axes []Axis) Axis {
	var set Axis
	for _, axis := range axes {
		set |= axis
	}
	return set
}

// LockPosition pins the locked components of the parent position to Values
// (zero unless set) and lets the other components through
type LockPosition struct {
	Axes   Axis
	Values mgl32.Vec3
}

func NewLockPosition(axes ...Axis) *LockPosition {
	return &LockPosition{Axes: combine(axes)}
}

// WithValues sets the values the locked components are pinned to
func (d *LockPosition) WithValues(values mgl32.Vec3) *LockPosition {
	d.Values = values
	return d
}

func (d *LockPosition) Update(params camrig.UpdateParams) pose.Transform {
	parent := params.Parent()

	position := parent.Position
	if d.Axes.Has(AxisX) {
		position[0] = d.Values[0]
	}
	if d.Axes.Has(AxisY) {
		position[1] = d.Values[1]
	}
	if d.Axes.Has(AxisZ) {
		position[2] = d.Values[2]
	}

	return pose.Transform{Position: position, Rotation: parent.Rotation}
}

// LockRotation removes the parent's rotation about the locked axes.
// The rotation is split into yaw (Y), pitch (X) and roll (Z); locked angles are zeroed.
type LockRotation struct {
	Axes Axis
}

func NewLockRotation(axes ...Axis) *LockRotation {
	return &LockRotation{Axes: combine(axes)}
}

func (d *LockRotation) Update(params camrig.UpdateParams) pose.Transform {
	parent := params.Parent()
	if d.Axes == AxisNone {
		return parent
	}

	yaw, pitch, roll := pose.EulerYXZ(parent.Rotation)
	if d.Axes.Has(AxisY) {
		yaw = 0
	}
	if d.Axes.Has(AxisX) {
		pitch = 0
	}
	if d.Axes.Has(AxisZ) {
		roll = 0
	}

	return pose.Transform{
		Position: parent.Position,
		Rotation: pose.FromYawPitchRoll(yaw, pitch, roll),
	}
}
