package camrig

import "github.com/akmonengine/camrig/pose"

// Driver is one stage of a camera rig: it receives the transform computed by the
// previous stage and returns a new one.
type Driver interface {
	Update(params UpdateParams) pose.Transform
}

// UpdateParams is what a rig hands to each driver during Update.
// Every driver gets its own value, which the rig never changes afterwards.
//
// The unexported method keeps other packages from declaring their own
// implementation. It does not stop a type that embeds an UpdateParams from
// overriding the accessors, so sealing only guards against accidental misuse:
// drivers must still be updated through their Rig.
type UpdateParams interface {
	// Parent is the output of the previous driver, or the identity for the first one
	Parent() pose.Transform
	// DeltaTime is the elapsed time of this rig update, in seconds
	DeltaTime() float32
	Handedness() pose.Handedness

	rigUpdate()
}

type updateParams struct {
	parent     pose.Transform
	deltaTime  float32
	handedness pose.Handedness
}

func (p *updateParams) Parent() pose.Transform      { return p.parent }
func (p *updateParams) DeltaTime() float32          { return p.deltaTime }
func (p *updateParams) Handedness() pose.Handedness { return p.handedness }
func (p *updateParams) rigUpdate()                  {}
