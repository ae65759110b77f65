package element_set

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

var nextID atomic.Uint64

type elementSet struct {
	id        uint64
	name      string
	category  pose.Category
	enabled   atomic.Bool
	elements  []pose.Element
	generator pose.Generator
	scheduler morph.Scheduler
	schedOpts []morph.SchedulerBuilderOption
	motion    compositor.Motion
	target    compositor.Target
}

// ElementSet is a fixed-size collection of same-category elements sharing one morph factor.
// Poses are generated once by NewElementSet; Tick only blends them.
type ElementSet interface {
	// ID returns the set's process-unique identifier.
	//
	// Returns:
	//   - uint64: the set ID
	ID() uint64

	// Name returns the set's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Category returns the pose strategy the set was generated with.
	//
	// Returns:
	//   - pose.Category: the category
	Category() pose.Category

	// Count returns the number of elements, fixed at creation.
	//
	// Returns:
	//   - int: the element count
	Count() int

	// Elements returns the generated elements. Callers must not modify them.
	//
	// Returns:
	//   - []pose.Element: the elements in generation order
	Elements() []pose.Element

	// Enabled returns whether the set is composed and drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles composition and drawing. A disabled set still advances its morph factor.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Morph returns the morph factor computed by the last Tick.
	//
	// Returns:
	//   - float32: the factor in [0, 1]
	Morph() float32

	// Target returns the render buffer composed into, or nil if none is attached.
	//
	// Returns:
	//   - compositor.Target: the attached target
	Target() compositor.Target

	// SetTarget attaches the render buffer Tick composes into. Pass nil to detach.
	//
	// Parameters:
	//   - target: the buffer to compose into
	SetTarget(target compositor.Target)

	// Tick advances the morph factor by deltaTime and composes every element into the
	// target. It never allocates; with no target attached only the morph factor moves.
	//
	// Parameters:
	//   - elapsed: seconds since scene start
	//   - deltaTime: seconds since the previous tick
	//
	// Returns:
	//   - float32: the morph factor after this tick
	Tick(elapsed, deltaTime float32) float32
}

var _ ElementSet = &elementSet{}

// NewElementSet generates count elements of category and binds them to the shared toggle.
//
// Parameters:
//   - category: the pose strategy
//   - count: number of elements, zero yields an empty valid set
//   - signal: the shared scatter toggle
//   - options: functional options to configure the set
//
// Returns:
//   - ElementSet: the new set
//   - error: if count is negative or the category is unknown
func NewElementSet(category pose.Category, count int, signal morph.Signal, options ...ElementSetBuilderOption) (ElementSet, error) {
	s := &elementSet{
		id:       nextID.Add(1),
		name:     category.String(),
		category: category,
		motion:   compositor.ForCategory(category),
	}
	s.enabled.Store(true)
	for _, opt := range options {
		opt(s)
	}
	if s.generator == nil {
		s.generator = pose.NewGenerator()
	}

	elements, err := s.generator.Generate(count, category)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s set: %w", s.name, err)
	}
	s.elements = elements
	s.scheduler = morph.NewScheduler(signal, s.schedOpts...)
	return s, nil
}

func (s *elementSet) ID() uint64 {
	return s.id
}

func (s *elementSet) Name() string {
	return s.name
}

func (s *elementSet) Category() pose.Category {
	return s.category
}

func (s *elementSet) Count() int {
	return len(s.elements)
}

func (s *elementSet) Elements() []pose.Element {
	return s.elements
}

func (s *elementSet) Enabled() bool {
	return s.enabled.Load()
}

func (s *elementSet) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

func (s *elementSet) Morph() float32 {
	return s.scheduler.Value()
}

func (s *elementSet) Target() compositor.Target {
	return s.target
}

func (s *elementSet) SetTarget(target compositor.Target) {
	s.target = target
}

func (s *elementSet) Tick(elapsed, deltaTime float32) float32 {
	m := s.scheduler.Advance(deltaTime)
	if s.target == nil || !s.enabled.Load() {
		return m
	}
	compositor.ComposeInto(s.elements, m, elapsed, s.motion, s.target)
	return m
}
