// Package camrig composes camera rigs out of small drivers.
//
// A Rig holds an ordered chain of Drivers. Every Update starts from the identity
// transform and feeds each driver's output to the next one as its parent, so the
// chain reads as a recipe:
//
//	rig := camrig.NewBuilder().
//		With(drivers.NewYawPitch().WithYawPitch(45, -30)).
//		With(drivers.NewSmoothRotation(1.5)).
//		With(drivers.NewArm(mgl32.Vec3{0, 0, 8})).
//		Build()
//
//	camrig.MustFind[*drivers.YawPitch](rig).RotateYawPitch(-90, 0)
//	transform := rig.Update(1.0 / 60.0)
//
// Drivers are tuned between updates by looking them up by type with Find or
// MustFind. Only the rig calls Driver.Update.
package camrig
