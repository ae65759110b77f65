package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-tree/engine/camera"
	"github.com/Carmen-Shannon/oxy-tree/engine/component"
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
	"github.com/Carmen-Shannon/oxy-tree/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// GPUFrameSource is the canonical WGSL definition of the Frame and Draw structs.
	// Matches GPUFrameUniform (48 bytes) and GPUDrawUniform (112 bytes).
	//
	//go:embed assets/frame.wgsl
	GPUFrameSource string

	//go:embed assets/bindings.wgsl
	bindingsSource string

	//go:embed assets/lit.wgsl
	litSource string

	//go:embed assets/ribbon.wgsl
	ribbonSource string

	//go:embed assets/foliage.wgsl
	foliageSource string

	//go:embed assets/sparkle.wgsl
	sparkleSource string
)

// shaderSource prepends the shared struct definitions and bindings to a pipeline body.
func shaderSource(body string) string {
	return camera.GPUCameraUniformSource + light.GPULightSource + GPUFrameSource + bindingsSource + body
}

// GPUFrameUniform holds the per-frame values shared by every draw.
// Size: 48 bytes.
type GPUFrameUniform struct {
	FogColor    [3]float32 // offset  0
	FogNear     float32    // offset 12
	GroupOffset [3]float32 // offset 16: translation of the whole tree
	FogFar      float32    // offset 28
	Time        float32    // offset 32: seconds since the scene started
	_pad        [3]float32
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// MarshalInto serializes the uniform into buf, which must hold at least Size bytes.
func (g *GPUFrameUniform) MarshalInto(buf []byte) {
	putF32s(buf[0:], g.FogColor[0], g.FogColor[1], g.FogColor[2], g.FogNear)
	putF32s(buf[16:], g.GroupOffset[0], g.GroupOffset[1], g.GroupOffset[2], g.FogFar)
	putF32s(buf[32:], g.Time, 0, 0, 0)
}

// GPUDrawUniform holds one draw's material and transform. Every pipeline binds one at group 2;
// each reads only the fields it needs.
// Size: 112 bytes.
type GPUDrawUniform struct {
	Model      [16]float32 // offset  0: ribbon model matrix, identity elsewhere
	Color      [3]float32  // offset 64
	Opacity    float32     // offset 76
	Emissive   float32     // offset 80
	Metalness  float32     // offset 84
	Roughness  float32     // offset 88
	Morph      float32     // offset 92: foliage morph factor
	PointScale float32     // offset 96: world size of one particle size unit
	_pad       [3]float32
}

// Size returns the size of the GPUDrawUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUDrawUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// MarshalInto serializes the uniform into buf, which must hold at least Size bytes.
func (g *GPUDrawUniform) MarshalInto(buf []byte) {
	putF32s(buf[0:], g.Model[:]...)
	putF32s(buf[64:], g.Color[0], g.Color[1], g.Color[2], g.Opacity)
	putF32s(buf[80:], g.Emissive, g.Metalness, g.Roughness, g.Morph)
	putF32s(buf[96:], g.PointScale, 0, 0, 0)
}

// setMaterial copies a component material into the uniform.
func (g *GPUDrawUniform) setMaterial(m component.Material) {
	g.Metalness = m.Metalness
	g.Roughness = m.Roughness
	g.Opacity = m.Opacity
}

func putF32s(buf []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

const stageBoth = wgpu.ShaderStageVertex | wgpu.ShaderStageFragment

func uniformEntry(binding uint32, size uint64) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: stageBoth,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: size,
		},
	}
}

// CameraLayout is bind group 0: the camera uniform.
func CameraLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label:   "camera",
		Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, uint64((&camera.GPUCameraUniform{}).Size()))},
	}
}

// FrameLayout is bind group 1: the frame uniform and the lights.
func FrameLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "frame",
		Entries: []wgpu.BindGroupLayoutEntry{
			uniformEntry(0, uint64((&GPUFrameUniform{}).Size())),
			uniformEntry(1, light.LightBufferSize),
		},
	}
}

// DrawLayout is bind group 2: one draw's uniform.
func DrawLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label:   "draw",
		Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, uint64((&GPUDrawUniform{}).Size()))},
	}
}

func f32Attr(location uint32, offset uint64, format wgpu.VertexFormat) wgpu.VertexAttribute {
	return wgpu.VertexAttribute{Format: format, Offset: offset, ShaderLocation: location}
}

// MeshLayout is vertex slot 0 of every pipeline: model.GPUVertex.
func MeshLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64((&model.GPUVertex{}).Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			f32Attr(0, 0, wgpu.VertexFormatFloat32x3),
			f32Attr(1, 12, wgpu.VertexFormatFloat32x3),
		},
	}
}

// InstanceLayout is vertex slot 1 of the lit pipeline: compositor.InstanceBuffer.
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: compositor.InstanceStride * 4,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			f32Attr(2, 0, wgpu.VertexFormatFloat32x4),
			f32Attr(3, 16, wgpu.VertexFormatFloat32x4),
			f32Attr(4, 32, wgpu.VertexFormatFloat32x4),
			f32Attr(5, 48, wgpu.VertexFormatFloat32x4),
			f32Attr(6, 64, wgpu.VertexFormatFloat32x4),
		},
	}
}

// FoliageLayout is vertex slot 1 of the foliage pipeline: component.Foliage.StaticData.
func FoliageLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: component.FoliageStride * 4,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			f32Attr(2, 0, wgpu.VertexFormatFloat32x3),
			f32Attr(3, 12, wgpu.VertexFormatFloat32x3),
			f32Attr(4, 24, wgpu.VertexFormatFloat32x3),
			f32Attr(5, 36, wgpu.VertexFormatFloat32),
			f32Attr(6, 40, wgpu.VertexFormatFloat32),
		},
	}
}

// SparkleLayout is vertex slot 1 of the sparkle pipeline: component.Sparkles.Data.
func SparkleLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: component.SparkleStride * 4,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			f32Attr(2, 0, wgpu.VertexFormatFloat32x3),
			f32Attr(3, 12, wgpu.VertexFormatFloat32),
			f32Attr(4, 16, wgpu.VertexFormatFloat32x3),
			f32Attr(5, 28, wgpu.VertexFormatFloat32),
		},
	}
}
