package component

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/element_set"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

type instanced struct {
	set      element_set.ElementSet
	buffer   *compositor.InstanceBuffer
	material Material
}

// Instanced is a morphing set drawn as one instanced mesh: the ornaments and the gifts.
type Instanced interface {
	Component

	// Set returns the underlying element set.
	//
	// Returns:
	//   - element_set.ElementSet: the instance set
	Set() element_set.ElementSet

	// Buffer returns the per-instance buffer composed into every tick.
	//
	// Returns:
	//   - *compositor.InstanceBuffer: the instance buffer
	Buffer() *compositor.InstanceBuffer

	// Material returns the shading parameters for the mesh.
	//
	// Returns:
	//   - Material: the material
	Material() Material
}

var _ Instanced = &instanced{}

// NewOrnaments builds the surface ornament set.
//
// Parameters:
//   - count: number of ornaments
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Instanced: the ornament set
//   - error: if the set cannot be generated
func NewOrnaments(count int, signal morph.Signal, opts ...ComponentBuilderOption) (Instanced, error) {
	return newInstanced(pose.CategorySurfaceOrnament, count, signal, OrnamentMaterial, opts)
}

// NewGifts builds the gift set around the tree base.
//
// Parameters:
//   - count: number of gifts
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Instanced: the gift set
//   - error: if the set cannot be generated
func NewGifts(count int, signal morph.Signal, opts ...ComponentBuilderOption) (Instanced, error) {
	return newInstanced(pose.CategoryBaseGift, count, signal, GiftMaterial, opts)
}

func newInstanced(category pose.Category, count int, signal morph.Signal, material Material, opts []ComponentBuilderOption) (Instanced, error) {
	o := collect(opts)
	buffer := compositor.NewInstanceBuffer(count)
	set, err := o.newSet(category, count, signal, element_set.WithTarget(buffer))
	if err != nil {
		return nil, err
	}
	for i, e := range set.Elements() {
		buffer.SetAttribute(i, e.Color, 0)
	}
	// compose once so the first upload is already the assembled pose
	set.Tick(0, 0)

	return &instanced{
		set:      set,
		buffer:   buffer,
		material: material,
	}, nil
}

func (c *instanced) Name() string {
	return c.set.Name()
}

func (c *instanced) Tick(elapsed, deltaTime float32) {
	c.set.Tick(elapsed, deltaTime)
}

func (c *instanced) Set() element_set.ElementSet {
	return c.set
}

func (c *instanced) Buffer() *compositor.InstanceBuffer {
	return c.buffer
}

func (c *instanced) Material() Material {
	return c.material
}
