package component

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/element_set"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

// options collects the construction settings shared by every component.
type options struct {
	name         string
	generator    pose.Generator
	schedOpts    []morph.SchedulerBuilderOption
	cpuPositions bool
	seed         *uint64
}

// ComponentBuilderOption is a functional option applied to a component during construction.
type ComponentBuilderOption func(*options)

func collect(opts []ComponentBuilderOption) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName overrides the component's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - ComponentBuilderOption: a function that applies the name option
func WithName(name string) ComponentBuilderOption {
	return func(o *options) {
		o.name = name
	}
}

// WithGenerator sets the pose generator used to build the component's element set.
//
// Parameters:
//   - g: the generator
//
// Returns:
//   - ComponentBuilderOption: a function that applies the generator option
func WithGenerator(g pose.Generator) ComponentBuilderOption {
	return func(o *options) {
		o.generator = g
	}
}

// WithSchedulerOptions forwards options to the component's morph scheduler.
//
// Parameters:
//   - opts: the scheduler options
//
// Returns:
//   - ComponentBuilderOption: a function that applies the scheduler options
func WithSchedulerOptions(opts ...morph.SchedulerBuilderOption) ComponentBuilderOption {
	return func(o *options) {
		o.schedOpts = append(o.schedOpts, opts...)
	}
}

// WithCPUPositions makes the foliage compose particle positions on the CPU every tick,
// for backends without a vertex shader.
//
// Parameters:
//   - enabled: true to compose positions on the CPU
//
// Returns:
//   - ComponentBuilderOption: a function that applies the option
func WithCPUPositions(enabled bool) ComponentBuilderOption {
	return func(o *options) {
		o.cpuPositions = enabled
	}
}

// WithSeed fixes the random source of components that sample their own layout (sparkles).
//
// Parameters:
//   - seed: the seed
//
// Returns:
//   - ComponentBuilderOption: a function that applies the seed option
func WithSeed(seed uint64) ComponentBuilderOption {
	return func(o *options) {
		o.seed = &seed
	}
}

// newSet builds an element set with the collected options. extra options are applied last.
func (o options) newSet(category pose.Category, count int, signal morph.Signal, extra ...element_set.ElementSetBuilderOption) (element_set.ElementSet, error) {
	opts := []element_set.ElementSetBuilderOption{element_set.WithSchedulerOptions(o.schedOpts...)}
	if o.generator != nil {
		opts = append(opts, element_set.WithGenerator(o.generator))
	}
	if o.name != "" {
		opts = append(opts, element_set.WithName(o.name))
	}
	return element_set.NewElementSet(category, count, signal, append(opts, extra...)...)
}
