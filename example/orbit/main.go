package main

import (
	"fmt"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/drivers"
	"github.com/akmonengine/camrig/pose"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// keyPress simulates the Z/X keys of an interactive orbit camera
type keyPress struct {
	frame int
	key   rune
}

var script = []keyPress{
	{frame: 30, key: 'X'},
	{frame: 90, key: 'X'},
	{frame: 150, key: 'Z'},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rig := camrig.NewBuilder(camrig.WithLogger(logger)).
		With(drivers.NewYawPitch().WithYawPitch(45, -30)).
		With(drivers.NewSmoothRotation(1.5)).
		With(drivers.NewArm(mgl32.Vec3{0, 0, 8})).
		Build()

	fmt.Println("Orbit camera")
	fmt.Println("============")
	printTransform(0, rig.FinalTransform())

	const dt float32 = 1.0 / 60.0
	const maxSteps int = 240

	next := 0
	for step := 1; step <= maxSteps; step++ {
		yawPitch := camrig.MustFind[*drivers.YawPitch](rig)
		for next < len(script) && script[next].frame == step {
			switch script[next].key {
			case 'Z':
				yawPitch.RotateYawPitch(-90, 0)
			case 'X':
				yawPitch.RotateYawPitch(90, 0)
			}
			logger.Info("key pressed",
				zap.String("key", string(script[next].key)),
				zap.Float32("yaw", yawPitch.YawDegrees),
			)
			next++
		}

		transform := rig.Update(dt)
		if step%20 == 0 {
			printTransform(step, transform)
		}
	}
}

func printTransform(step int, t pose.Transform) {
	// A renderer would build its view matrix from these
	eye := t.Position
	center := eye.Add(t.Forward(pose.RightHanded))
	view := mgl32.LookAtV(eye, center, t.Up())

	fmt.Printf("--- FRAME %d ---\n", step)
	fmt.Printf("  Position: %v (distance %.3f)\n", eye, eye.Len())
	fmt.Printf("  Forward:  %v\n", t.Forward(pose.RightHanded))
	fmt.Printf("  View translation: %v\n", view.Col(3).Vec3())
}
