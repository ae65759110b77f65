package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (112 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Right and Up are the camera's world-space basis vectors, used to face particle quads at the viewer.
// Size: 112 bytes (each vec3 is padded to 16).
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset  0
	Position [3]float32  // offset 64
	_pad0    float32
	Right    [3]float32 // offset 80
	_pad1    float32
	Up       [3]float32 // offset 96
	_pad2    float32
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	putVec3(buf[64:], g.Position)
	putVec3(buf[80:], g.Right)
	putVec3(buf[96:], g.Up)
	return buf
}

func putVec3(buf []byte, v [3]float32) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0)
}
