package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertex is the vertex layout shared by every mesh pipeline.
// Billboard quads reuse it with the corner offset in Position.xy.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position (12 bytes)
	Normal   [3]float32 // offset 12: unit normal (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size in bytes (24)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the vertex into a little-endian byte slice.
//
// Returns:
//   - []byte: the serialized vertex data (24 bytes)
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	g.put(buf)
	return buf
}

func (g *GPUVertex) put(buf []byte) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
}

// MarshalVertices packs vertices into one contiguous upload buffer.
//
// Parameters:
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: 24 bytes per vertex
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*24)
	for i := range vertices {
		vertices[i].put(buf[i*24:])
	}
	return buf
}

// MarshalIndices packs uint32 indices into a little-endian byte slice.
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// ComputeBoundingRadius returns the distance from the origin to the farthest vertex.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - float32: the bounding sphere radius
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxDistSq float32
	for _, v := range vertices {
		p := v.Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return float32(math.Sqrt(float64(maxDistSq)))
}
