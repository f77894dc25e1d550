// Package preset describes camera rigs in YAML, so that a host can ship and tweak
// camera setups without recompiling:
//
//	handedness: right
//	drivers:
//	  - kind: yaw_pitch
//	    yaw: 45
//	    pitch: -30
//	  - kind: smooth
//	    rotation_smoothness: 1.5
//	  - kind: arm
//	    offset: [0, 0, 8]
//
// A preset only holds the initial driver parameters. Runtime state (smoothing
// history, angles changed by input) lives in the built rig and is never saved back.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/camrig"
	"github.com/akmonengine/camrig/pose"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmpty             = errors.New("empty preset")
	ErrUnknownDriver     = errors.New("unknown driver kind")
	ErrInvalidVector     = errors.New("invalid vector")
	ErrInvalidAxis       = errors.New("invalid axis")
	ErrInvalidHandedness = errors.New("invalid handedness")
)

// Preset is the YAML document describing a rig
type Preset struct {
	// right (default) or left
	Handedness string       `yaml:"handedness,omitempty"`
	Drivers    []DriverSpec `yaml:"drivers"`
}

// Decode reads and validates a single YAML preset. Unknown fields are rejected.
func Decode(r io.Reader) (*Preset, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var p Preset
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode preset: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile decodes the preset stored at path
func LoadFile(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Validate checks every field without building the rig, reporting all problems at once
func (p *Preset) Validate() error {
	var errs []error
	if _, err := p.handedness(); err != nil {
		errs = append(errs, err)
	}
	for i, spec := range p.Drivers {
		if _, err := spec.Driver(); err != nil {
			errs = append(errs, fmt.Errorf("driver %d (%s): %w", i, spec.Kind, err))
		}
	}

	return errors.Join(errs...)
}

// Builder returns a builder loaded with the preset's drivers, ready for more drivers or Build.
// opts are applied after the preset's own handedness, so they take precedence.
func (p *Preset) Builder(opts ...camrig.Option) (*camrig.Builder, error) {
	handedness, err := p.handedness()
	if err != nil {
		return nil, err
	}

	builder := camrig.NewBuilder(append([]camrig.Option{camrig.WithHandedness(handedness)}, opts...)...)
	for i, spec := range p.Drivers {
		driver, err := spec.Driver()
		if err != nil {
			return nil, fmt.Errorf("driver %d (%s): %w", i, spec.Kind, err)
		}
		builder.With(driver)
	}

	return builder, nil
}

// Build creates the rig described by the preset
func (p *Preset) Build(opts ...camrig.Option) (*camrig.Rig, error) {
	builder, err := p.Builder(opts...)
	if err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

func (p *Preset) handedness() (pose.Handedness, error) {
	switch p.Handedness {
	case "", "right":
		return pose.RightHanded, nil
	case "left":
		return pose.LeftHanded, nil
	default:
		return pose.RightHanded, fmt.Errorf("%w: %q", ErrInvalidHandedness, p.Handedness)
	}
}
