package camrig

import (
	"fmt"
	"math"
	"reflect"

	"github.com/akmonengine/camrig/pose"
	"go.uber.org/zap"
)

// Rig is a chain of drivers, each one animating on top of the previous one.
// A Rig is not safe for concurrent use.
type Rig struct {
	drivers    []Driver
	handedness pose.Handedness
	logger     *zap.Logger

	// Output of the last Update
	final pose.Transform
}

// Update runs all the drivers in sequence and returns the final camera transform.
// deltaTime is the elapsed time in seconds since the previous update; negative
// or NaN values are treated as zero.
func (r *Rig) Update(deltaTime float32) pose.Transform {
	if !(deltaTime >= 0) || math.IsInf(float64(deltaTime), 0) {
		r.logger.Debug("invalid delta time, using 0", zap.Float32("deltaTime", deltaTime))
		deltaTime = 0
	}

	parent := pose.Identity()
	for _, driver := range r.drivers {
		parent = driver.Update(&updateParams{
			parent:     parent,
			deltaTime:  deltaTime,
			handedness: r.handedness,
		})
	}

	r.final = parent
	return r.final
}

// FinalTransform returns the result of the last Update
func (r *Rig) FinalTransform() pose.Transform {
	return r.final
}

func (r *Rig) Handedness() pose.Handedness {
	return r.handedness
}

// Len returns the number of drivers in the chain
func (r *Rig) Len() int {
	return len(r.drivers)
}

// Drivers returns the drivers in chain order. The slice is a copy; the drivers are not.
func (r *Rig) Drivers() []Driver {
	drivers := make([]Driver, len(r.drivers))
	copy(drivers, r.drivers)
	return drivers
}

// Find returns the first driver of type T in the rig, typically a pointer type such
// as *drivers.YawPitch, so the caller can tune it before the next Update.
func Find[T Driver](r *Rig) (T, bool) {
	for _, driver := range r.drivers {
		if found, ok := driver.(T); ok {
			return found, true
		}
	}

	r.logger.Debug("driver not found", zap.String("type", typeName[T]()))
	var zero T
	return zero, false
}

// MustFind is like Find but panics if the rig has no driver of type T
func MustFind[T Driver](r *Rig) T {
	driver, ok := Find[T](r)
	if !ok {
		panic(fmt.Sprintf("camrig: no %s driver found in the rig", typeName[T]()))
	}
	return driver
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
