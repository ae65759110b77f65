package component

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/element_set"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

// FoliageStride is the number of floats per particle in Foliage.StaticData:
// assembled position, scattered position, color, size and random phase.
const FoliageStride = 11

type foliage struct {
	set       element_set.ElementSet
	static    []float32
	positions *compositor.PositionBuffer
	elapsed   float32
}

// Foliage is the needle particle cloud. On the GPU path the per-particle data is uploaded once and
// the vertex stage blends it from two uniforms; the CPU path composes positions every tick.
type Foliage interface {
	Component

	// Set returns the underlying element set.
	//
	// Returns:
	//   - element_set.ElementSet: the particle set
	Set() element_set.ElementSet

	// Uniform returns the two per-frame scalars consumed by the particle shader.
	//
	// Returns:
	//   - time: seconds since the scene started, as of the last Tick
	//   - morph: the morph factor after the last Tick
	Uniform() (time, morph float32)

	// StaticData returns the per-particle attributes, FoliageStride floats each.
	// It is built once at construction and never changes.
	//
	// Returns:
	//   - []float32: the packed attributes
	StaticData() []float32

	// Positions returns the CPU-composed positions, or nil unless built WithCPUPositions.
	//
	// Returns:
	//   - *compositor.PositionBuffer: the composed positions or nil
	Positions() *compositor.PositionBuffer
}

var _ Foliage = &foliage{}

// NewFoliage generates count needle particles bound to signal.
//
// Parameters:
//   - count: number of particles
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Foliage: the particle cloud
//   - error: if the particles cannot be generated
func NewFoliage(count int, signal morph.Signal, opts ...ComponentBuilderOption) (Foliage, error) {
	o := collect(opts)

	var extra []element_set.ElementSetBuilderOption
	var positions *compositor.PositionBuffer
	if o.cpuPositions {
		positions = compositor.NewPositionBuffer(count)
		extra = append(extra, element_set.WithTarget(positions))
	}

	set, err := o.newSet(pose.CategoryVolumetricFoliage, count, signal, extra...)
	if err != nil {
		return nil, err
	}

	return &foliage{
		set:       set,
		static:    packFoliage(set.Elements()),
		positions: positions,
	}, nil
}

func packFoliage(elements []pose.Element) []float32 {
	out := make([]float32, len(elements)*FoliageStride)
	for i := range elements {
		e := &elements[i]
		d := out[i*FoliageStride : (i+1)*FoliageStride]
		copy(d[0:3], e.Assembled.Position[:])
		copy(d[3:6], e.Scattered.Position[:])
		copy(d[6:9], e.Color[:])
		d[9] = e.Size
		d[10] = e.Random
	}
	return out
}

func (f *foliage) Name() string {
	return f.set.Name()
}

func (f *foliage) Tick(elapsed, deltaTime float32) {
	f.elapsed = elapsed
	f.set.Tick(elapsed, deltaTime)
}

func (f *foliage) Set() element_set.ElementSet {
	return f.set
}

func (f *foliage) Uniform() (time, morph float32) {
	return f.elapsed, f.set.Morph()
}

func (f *foliage) StaticData() []float32 {
	return f.static
}

func (f *foliage) Positions() *compositor.PositionBuffer {
	return f.positions
}
