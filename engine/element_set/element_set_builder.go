package element_set

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

// ElementSetBuilderOption is a functional option for configuring an ElementSet during construction.
type ElementSetBuilderOption func(*elementSet)

// WithName overrides the name, which defaults to the category name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - ElementSetBuilderOption: functional option to set the name
func WithName(name string) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.name = name
	}
}

// WithGenerator sets the pose generator. Sets built from one seeded generator are reproducible.
//
// Parameters:
//   - g: the generator to draw poses from
//
// Returns:
//   - ElementSetBuilderOption: functional option to set the generator
func WithGenerator(g pose.Generator) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.generator = g
	}
}

// WithMotion replaces the category's default secondary motion.
//
// Parameters:
//   - m: the motion to apply during composition
//
// Returns:
//   - ElementSetBuilderOption: functional option to set the motion
func WithMotion(m compositor.Motion) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.motion = m
	}
}

// WithTarget attaches the render buffer at construction.
//
// Parameters:
//   - t: the buffer to compose into
//
// Returns:
//   - ElementSetBuilderOption: functional option to set the target
func WithTarget(t compositor.Target) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.target = t
	}
}

// WithSchedulerOptions forwards options to the set's morph scheduler.
//
// Parameters:
//   - options: scheduler options such as morph.WithRate
//
// Returns:
//   - ElementSetBuilderOption: functional option to configure the scheduler
func WithSchedulerOptions(options ...morph.SchedulerBuilderOption) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.schedOpts = append(s.schedOpts, options...)
	}
}

// WithEnabled sets whether the set is composed and drawn.
//
// Parameters:
//   - enabled: false to skip composition
//
// Returns:
//   - ElementSetBuilderOption: functional option to set the enabled state
func WithEnabled(enabled bool) ElementSetBuilderOption {
	return func(s *elementSet) {
		s.enabled.Store(enabled)
	}
}
