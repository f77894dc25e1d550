package drivers

import (
	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
)

// Nested runs a whole rig as a single driver. The inner rig starts from its own
// identity transform, so the parent is ignored; only the delta time is forwarded.
type Nested struct {
	Rig *camrig.Rig
}

func NewNested(rig *camrig.Rig) *Nested {
	return &Nested{Rig: rig}
}

func (d *Nested) Update(params camrig.UpdateParams) pose.Transform {
	return d.Rig.Update(params.DeltaTime())
}
