package component

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/element_set"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

const (
	// StarCore is the slot of the bright inner octahedron in the star's instance buffer.
	StarCore = 0
	// StarHalo is the slot of the outer octahedron, turned pi/4 about z.
	StarHalo = 1
)

var starGold = common.MustParseHex("#FFD700")

type star struct {
	set    element_set.ElementSet
	target *starTarget
}

// Star is the apex ornament: one morphing element drawn as a core and a halo.
type Star interface {
	Component

	// Set returns the single-element set.
	//
	// Returns:
	//   - element_set.ElementSet: the set
	Set() element_set.ElementSet

	// Buffer returns the two-slot instance buffer (StarCore, StarHalo).
	//
	// Returns:
	//   - *compositor.InstanceBuffer: the instance buffer
	Buffer() *compositor.InstanceBuffer

	// Position returns the star's composed world position from the last Tick.
	//
	// Returns:
	//   - [3]float32: the position
	Position() [3]float32

	// Material returns the shading parameters.
	//
	// Returns:
	//   - Material: the material
	Material() Material
}

var _ Star = &star{}

// starTarget fans the single composed transform out to the core and halo slots.
type starTarget struct {
	buffer   *compositor.InstanceBuffer
	halo     [16]float32
	position [3]float32
}

var _ compositor.Target = &starTarget{}

func newStarTarget() *starTarget {
	st := &starTarget{buffer: compositor.NewInstanceBuffer(2)}
	common.BuildModelMatrix(st.halo[:], 0, 0, 0, 0, 0, math.Pi/4, 1, 1, 1)
	st.buffer.SetAttribute(StarCore, starGold, 1)
	st.buffer.SetAttribute(StarHalo, starGold, 0.35)
	return st
}

func (st *starTarget) Len() int {
	return 1
}

func (st *starTarget) Write(_ int, t *common.Transform) {
	st.position = t.Position
	core := st.buffer.Matrix(StarCore)
	st.buffer.Write(StarCore, t)
	common.Mul4(st.buffer.Matrix(StarHalo), core, st.halo[:])
}

// NewStar builds the apex star bound to signal.
//
// Parameters:
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Star: the star
//   - error: if the star cannot be generated
func NewStar(signal morph.Signal, opts ...ComponentBuilderOption) (Star, error) {
	o := collect(opts)
	target := newStarTarget()
	set, err := o.newSet(pose.CategoryStaticSingleton, 1, signal, element_set.WithTarget(target))
	if err != nil {
		return nil, err
	}
	set.Tick(0, 0)
	return &star{set: set, target: target}, nil
}

func (s *star) Name() string {
	return "star"
}

func (s *star) Tick(elapsed, deltaTime float32) {
	s.set.Tick(elapsed, deltaTime)
}

func (s *star) Set() element_set.ElementSet {
	return s.set
}

func (s *star) Buffer() *compositor.InstanceBuffer {
	return s.target.buffer
}

func (s *star) Position() [3]float32 {
	return s.target.position
}

func (s *star) Material() Material {
	return StarMaterial
}
