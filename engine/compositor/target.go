package compositor

import "github.com/Carmen-Shannon/oxy-tree/common"

// Target is a flat per-frame render buffer with one slot per element.
// Write must only touch slot i.
type Target interface {
	Len() int
	Write(i int, t *common.Transform)
}

// InstanceStride is the number of floats per slot in an InstanceBuffer: a column-major
// model matrix followed by one vec4 attribute (rgb color, emissive strength).
const InstanceStride = 20

// InstanceBuffer is the per-instance vertex buffer of the instanced mesh pipelines.
// Write replaces only the matrix of a slot; the attribute is set once at creation.
type InstanceBuffer struct {
	data []float32
}

var _ Target = &InstanceBuffer{}

// NewInstanceBuffer allocates a buffer for count instances.
func NewInstanceBuffer(count int) *InstanceBuffer {
	return &InstanceBuffer{data: make([]float32, max(count, 0)*InstanceStride)}
}

func (b *InstanceBuffer) Len() int {
	return len(b.data) / InstanceStride
}

func (b *InstanceBuffer) Write(i int, t *common.Transform) {
	t.Matrix(b.data[i*InstanceStride : i*InstanceStride+16])
}

// SetAttribute stores the color and emissive strength of slot i.
//
// Parameters:
//   - i: the slot index
//   - color: the instance's base color
//   - emissive: how much of the color is emitted regardless of lighting
func (b *InstanceBuffer) SetAttribute(i int, color common.RGB, emissive float32) {
	o := i*InstanceStride + 16
	b.data[o], b.data[o+1], b.data[o+2], b.data[o+3] = color[0], color[1], color[2], emissive
}

// Matrix returns the 16 floats of slot i's model matrix. The slice aliases the buffer.
func (b *InstanceBuffer) Matrix(i int) []float32 {
	return b.data[i*InstanceStride : i*InstanceStride+16]
}

// Floats returns the backing slice.
func (b *InstanceBuffer) Floats() []float32 {
	return b.data
}

// Bytes returns a byte view of the backing slice for GPU upload. The view aliases the buffer.
func (b *InstanceBuffer) Bytes() []byte {
	return common.SliceToBytes(b.data)
}

// PositionStride is the number of floats per slot in a PositionBuffer.
const PositionStride = 3

// PositionBuffer stores only the composed position of each element. It backs the
// CPU-side particle path used by the terminal backend.
type PositionBuffer struct {
	data []float32
}

var _ Target = &PositionBuffer{}

// NewPositionBuffer allocates a buffer for count particles.
func NewPositionBuffer(count int) *PositionBuffer {
	return &PositionBuffer{data: make([]float32, max(count, 0)*PositionStride)}
}

func (b *PositionBuffer) Len() int {
	return len(b.data) / PositionStride
}

func (b *PositionBuffer) Write(i int, t *common.Transform) {
	copy(b.data[i*PositionStride:], t.Position[:])
}

// At returns the position stored in slot i.
func (b *PositionBuffer) At(i int) [3]float32 {
	o := i * PositionStride
	return [3]float32{b.data[o], b.data[o+1], b.data[o+2]}
}

// Floats returns the backing slice.
func (b *PositionBuffer) Floats() []float32 {
	return b.data
}

// TransformBuffer keeps the decomposed transforms, for consumers that project
// or inspect instances rather than upload matrices.
type TransformBuffer struct {
	data []common.Transform
}

var _ Target = &TransformBuffer{}

// NewTransformBuffer allocates a buffer for count instances.
func NewTransformBuffer(count int) *TransformBuffer {
	return &TransformBuffer{data: make([]common.Transform, max(count, 0))}
}

func (b *TransformBuffer) Len() int {
	return len(b.data)
}

func (b *TransformBuffer) Write(i int, t *common.Transform) {
	b.data[i] = *t
}

// At returns the transform stored in slot i.
func (b *TransformBuffer) At(i int) common.Transform {
	return b.data[i]
}
