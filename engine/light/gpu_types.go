package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the number of light slots in the scene uniform. The WGSL array is
// fixed-size, so the buffer is always this large; LightCount says how many slots are live.
const MaxGPULights = 4

// GPULightSource is the canonical WGSL definition of the Light and Lights structs.
// Matches GPULight and MarshalLightBuffer exactly (272 bytes, uniform aligned).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of a single light source.
// Size: 64 bytes.
type GPULight struct {
	Position   [3]float32 // offset  0: world-space position (point/spot) or unused (directional)
	LightType  uint32     // offset 12: 0 = directional, 1 = point, 2 = spot
	Color      [3]float32 // offset 16: RGB color
	Intensity  float32    // offset 28: scalar multiplier
	Direction  [3]float32 // offset 32: normalized direction (directional/spot)
	LightRange float32    // offset 44: fade-out distance, 0 for none
	InnerCone  float32    // offset 48: cos(inner half-angle) for spot
	OuterCone  float32    // offset 52: cos(outer half-angle) for spot
	_pad       [2]float32 // offset 56
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	g.put(buf)
	return buf
}

func (g *GPULight) put(buf []byte) {
	putF32s(buf[0:], g.Position[:]...)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putF32s(buf[16:], g.Color[0], g.Color[1], g.Color[2], g.Intensity)
	putF32s(buf[32:], g.Direction[0], g.Direction[1], g.Direction[2], g.LightRange)
	putF32s(buf[48:], g.InnerCone, g.OuterCone, 0, 0)
}

// GPULightHeader is the header of the light uniform: the ambient term and the live light count.
// Size: 16 bytes (vec3 + u32).
type GPULightHeader struct {
	AmbientColor [3]float32 // offset 0: ambient RGB, already scaled by its intensity
	LightCount   uint32     // offset 12: number of live lights following the header
}

// Size returns the size of the GPULightHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (h *GPULightHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPULightHeader struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, 16)
	putF32s(buf, h.AmbientColor[:]...)
	binary.LittleEndian.PutUint32(buf[12:16], h.LightCount)
	return buf
}

// LightBufferSize is the byte size of the packed light uniform.
const LightBufferSize = 16 + MaxGPULights*64

// MarshalLightBuffer packs the enabled lights into the fixed-size uniform layout:
//
//	[GPULightHeader (16 bytes)] [GPULight × MaxGPULights (64 bytes each)]
//
// Lights past MaxGPULights are dropped; unused slots are zero.
//
// Parameters:
//   - lights: the scene's lights, only enabled ones are packed
//   - ambient: the ambient color as RGB
//
// Returns:
//   - []byte: LightBufferSize bytes ready for GPU upload
func MarshalLightBuffer(lights []Light, ambient [3]float32) []byte {
	buf := make([]byte, LightBufferSize)
	offset, count := 16, 0
	for _, l := range lights {
		if !l.Enabled() || count == MaxGPULights {
			continue
		}
		g := l.GPU()
		g.put(buf[offset:])
		offset += 64
		count++
	}
	header := GPULightHeader{AmbientColor: ambient, LightCount: uint32(count)}
	copy(buf, header.Marshal())
	return buf
}

func putF32s(buf []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
