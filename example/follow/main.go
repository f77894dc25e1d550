package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/drivers"
	"github.com/akmonengine/camrig/pose"
	"github.com/akmonengine/camrig/preset"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Car drives in a circle; the camera follows it from behind
type Car struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	angle    float32
}

func (c *Car) Drive(dt float32) {
	const radius = 10.0
	const speed = 0.5 // rad/s

	c.angle += speed * dt
	s, co := math.Sincos(float64(c.angle))
	c.Position = mgl32.Vec3{float32(co * radius), 0, float32(s * radius)}
	// Facing along the tangent of the circle
	c.Rotation = pose.LookAt(mgl32.Vec3{float32(-s), 0, float32(co)}, pose.RightHanded)
}

// Follow wraps the follow rig so the outer rig can treat it as one driver
type Follow struct {
	*drivers.Nested
}

func NewFollow(p *preset.Preset, logger *zap.Logger) (*Follow, error) {
	rig, err := p.Build(camrig.WithLogger(logger.Named("follow")))
	if err != nil {
		return nil, err
	}

	return &Follow{Nested: drivers.NewNested(rig)}, nil
}

func (f *Follow) Track(car *Car) {
	camrig.MustFind[*drivers.Position](f.Rig).Position = car.Position
	camrig.MustFind[*drivers.Rotation](f.Rig).Rotation = car.Rotation
	camrig.MustFind[*drivers.LookAt](f.Rig).Target = car.Position.Add(mgl32.Vec3{0, 1, 0})
}

func main() {
	path := flag.String("preset", "preset/testdata/follow.yaml", "camera rig preset")
	steps := flag.Int("steps", 300, "frames to simulate")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	p, err := preset.LoadFile(*path)
	if err != nil {
		logger.Fatal("cannot load preset", zap.Error(err))
	}

	follow, err := NewFollow(p, logger)
	if err != nil {
		logger.Fatal("cannot build follow rig", zap.Error(err))
	}

	// Keep the horizon level whatever the car does
	camera := camrig.NewBuilder(camrig.WithLogger(logger)).
		With(follow).
		With(drivers.NewLockRotation(drivers.AxisZ)).
		Build()

	car := &Car{Rotation: mgl32.QuatIdent()}
	const dt float32 = 1.0 / 60.0

	for step := 1; step <= *steps; step++ {
		car.Drive(dt)
		camrig.MustFind[*Follow](camera).Track(car)

		transform := camera.Update(dt)
		if step%30 == 0 {
			distance := transform.Position.Sub(car.Position).Len()
			fmt.Printf("--- FRAME %d ---\n", step)
			fmt.Printf("  Car:      %v\n", car.Position)
			fmt.Printf("  Camera:   %v (distance %.3f)\n", transform.Position, distance)
			fmt.Printf("  Forward:  %v\n", transform.Forward(pose.RightHanded))
		}
	}
}
