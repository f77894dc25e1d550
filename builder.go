package camrig

import (
	"github.com/akmonengine/camrig/pose"
	"go.uber.org/zap"
)

// Option configures a rig at construction time
type Option func(*options)

type options struct {
	handedness pose.Handedness
	logger     *zap.Logger
}

// WithHandedness selects the coordinate convention; the default is pose.RightHanded
func WithHandedness(h pose.Handedness) Option {
	return func(o *options) {
		o.handedness = h
	}
}

// WithLogger sets the logger used for debug output; nil disables logging
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Builder accumulates drivers in order until Build is called
type Builder struct {
	drivers []Driver
	options options
	built   bool
}

// NewBuilder starts an empty rig
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(&b.options)
	}
	if b.options.logger == nil {
		b.options.logger = zap.NewNop()
	}

	return b
}

// With appends a driver to the end of the chain
func (b *Builder) With(driver Driver) *Builder {
	if b.built {
		panic("camrig: With called after Build")
	}
	if driver == nil {
		panic("camrig: nil driver")
	}

	b.drivers = append(b.drivers, driver)
	return b
}

// Build returns the rig, already updated once with a zero delta time so that its
// FinalTransform is valid before the first frame. A builder can only be built once.
func (b *Builder) Build() *Rig {
	if b.built {
		panic("camrig: Build called twice")
	}
	b.built = true

	rig := &Rig{
		drivers:    b.drivers,
		handedness: b.options.handedness,
		logger:     b.options.logger,
		final:      pose.Identity(),
	}
	b.drivers = nil

	rig.Update(0)
	rig.logger.Debug("rig built",
		zap.Int("drivers", len(rig.drivers)),
		zap.Stringer("handedness", rig.handedness),
	)

	return rig
}
