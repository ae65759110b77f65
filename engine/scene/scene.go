package scene

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/camera"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
	"github.com/Carmen-Shannon/oxy-tree/engine/model"
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer"
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline keys registered by Init.
const (
	PipelineLit     = "lit"
	PipelineRibbon  = "ribbon"
	PipelineFoliage = "foliage"
	PipelineSparkle = "sparkle"
)

// drawable is one draw call: a mesh, its instance data and its draw uniform.
type drawable struct {
	name     string
	pipeline string
	mesh     model.Model
	count    int

	// instances returns the per-instance bytes. static data is uploaded once by Init.
	instances func() []byte
	static    bool

	// update refreshes the draw uniform before it is marshaled.
	update   func(u *GPUDrawUniform)
	uniform  GPUDrawUniform
	provider bind_group_provider.BindGroupProvider
	buf      []byte
	groups   []bind_group_provider.BindGroupProvider
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu   sync.Mutex
	name string

	r    renderer.Renderer
	cam  camera.Camera
	tree tree.Tree

	lights   []light.Light
	ambient  [3]float32
	fogColor common.RGB
	fogNear  float32
	fogFar   float32

	foliageScale float32
	sparkleScale float32

	frame         GPUFrameUniform
	frameBuf      []byte
	frameProvider bind_group_provider.BindGroupProvider

	drawables []*drawable
	writes    []bind_group_provider.BufferWrite

	initialized bool
}

// Scene draws a tree.Tree with the GPU renderer. It owns the pipelines, the lights and one
// draw per tree component; the tree itself stays GPU-agnostic.
//
// Per frame the host calls Tree().Tick, then Prepare, then Draw between the renderer's
// BeginFrame and EndFrame.
type Scene interface {
	// Name returns the scene's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Tree returns the composition being drawn.
	//
	// Returns:
	//   - tree.Tree: the tree
	Tree() tree.Tree

	// Camera returns the scene camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Renderer returns the renderer the scene draws with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// Lights returns the scene's lights in upload order.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light

	// Init registers the pipelines and creates every GPU buffer and bind group. It must be called
	// once before Prepare.
	//
	// Returns:
	//   - error: if a pipeline or buffer cannot be created
	Init() error

	// Prepare stages this frame's uniform and instance writes. It must follow the tree's Tick.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	Prepare(elapsed float32)

	// Draw records one draw call per component: opaque meshes first, then particles, then the ribbon.
	//
	// Returns:
	//   - error: if a pipeline is missing
	Draw() error

	// Release frees the scene's GPU resources.
	Release()
}

var _ Scene = &scene{}

// NewScene creates a Scene for t. The default lighting, fog and particle scale reproduce the
// stock look; see light.Defaults.
//
// Parameters:
//   - r: the renderer to draw with
//   - cam: the scene camera
//   - t: the composition to draw
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(r renderer.Renderer, cam camera.Camera, t tree.Tree, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:         "Scene",
		r:            r,
		cam:          cam,
		tree:         t,
		ambient:      light.DefaultAmbient,
		fogColor:     common.MustParseHex("#000500"),
		fogNear:      10,
		fogFar:       40,
		foliageScale: 0.35,
		sparkleScale: 0.06,
		frameProvider: bind_group_provider.NewBindGroupProvider("frame"),
	}
	if bg, err := t.Config().BackgroundColor(); err == nil {
		s.fogColor = bg
	}
	for _, opt := range options {
		opt(s)
	}
	if s.lights == nil {
		s.lights = light.Defaults()
	}
	s.frameBuf = make([]byte, s.frame.Size())
	s.drawables = s.buildDrawables()
	return s
}

func (s *scene) buildDrawables() []*drawable {
	t := s.tree
	quad := model.NewQuad()

	ornaments := &drawable{
		name: "ornaments", pipeline: PipelineLit,
		mesh:      model.NewModel(model.NewSphere(1, 32, 32), model.WithName("ornament")),
		count:     t.Ornaments().Buffer().Len(),
		instances: t.Ornaments().Buffer().Bytes,
	}
	ornaments.uniform.setMaterial(t.Ornaments().Material())

	gifts := &drawable{
		name: "gifts", pipeline: PipelineLit,
		mesh:      model.NewModel(model.NewBox(1, 1, 1), model.WithName("gift")),
		count:     t.Gifts().Buffer().Len(),
		instances: t.Gifts().Buffer().Bytes,
	}
	gifts.uniform.setMaterial(t.Gifts().Material())

	star := &drawable{
		name: "star", pipeline: PipelineLit,
		mesh:      model.NewModel(model.NewOctahedron(0.8), model.WithName("star")),
		count:     t.Star().Buffer().Len(),
		instances: t.Star().Buffer().Bytes,
	}
	star.uniform.setMaterial(t.Star().Material())

	foliage := &drawable{
		name: "foliage", pipeline: PipelineFoliage,
		mesh:      model.NewModel(quad, model.WithName("foliage")),
		count:     t.Foliage().Set().Count(),
		instances: func() []byte { return common.SliceToBytes(t.Foliage().StaticData()) },
		static:    true,
		update: func(u *GPUDrawUniform) {
			_, u.Morph = t.Foliage().Uniform()
		},
	}
	foliage.uniform.Opacity = 1
	foliage.uniform.PointScale = s.foliageScale

	sparkles := s.sparkleDrawable("sparkles", quad, t.Sparkles().Count(), func() []byte {
		return common.SliceToBytes(t.Sparkles().Data())
	})
	starSparkles := s.sparkleDrawable("star sparkles", quad, t.StarSparkles().Count(), func() []byte {
		return common.SliceToBytes(t.StarSparkles().Data())
	})

	ribbon := &drawable{
		name: "ribbon", pipeline: PipelineRibbon,
		mesh:  model.NewModel(t.Ribbon().Mesh(), model.WithName("ribbon")),
		count: 1,
		update: func(u *GPUDrawUniform) {
			rb := t.Ribbon()
			st := rb.State()
			rb.Matrix(u.Model[:])
			u.Color = st.Color
			u.Emissive = st.Emissive
			u.setMaterial(rb.Material())
		},
	}

	// opaque, then additive particles, then the translucent ribbon
	return []*drawable{ornaments, gifts, star, foliage, sparkles, starSparkles, ribbon}
}

func (s *scene) sparkleDrawable(name string, quad model.Mesh, count int, data func() []byte) *drawable {
	d := &drawable{
		name: name, pipeline: PipelineSparkle,
		mesh:      model.NewModel(quad, model.WithName(name)),
		count:     count,
		instances: data,
	}
	d.uniform.Opacity = 1
	d.uniform.PointScale = s.sparkleScale
	return d
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Tree() tree.Tree {
	return s.tree
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lights
}

// Pipelines builds the scene's four render pipelines. They share bind group layouts:
// camera at 0, frame and lights at 1, the draw uniform at 2.
//
// Returns:
//   - []pipeline.Pipeline: the lit, ribbon, foliage and sparkle pipelines
func Pipelines() []pipeline.Pipeline {
	groups := []shader.ShaderBuilderOption{
		shader.WithBindGroupLayout(0, CameraLayout()),
		shader.WithBindGroupLayout(1, FrameLayout()),
		shader.WithBindGroupLayout(2, DrawLayout()),
	}
	stages := func(key, body string, layouts ...wgpu.VertexBufferLayout) []pipeline.PipelineBuilderOption {
		src := shaderSource(body)
		return []pipeline.PipelineBuilderOption{
			pipeline.WithVertexShader(shader.NewShader(key, shader.ShaderTypeVertex, src,
				append([]shader.ShaderBuilderOption{shader.WithVertexLayouts(layouts...)}, groups...)...)),
			pipeline.WithFragmentShader(shader.NewShader(key, shader.ShaderTypeFragment, src, groups...)),
		}
	}

	return []pipeline.Pipeline{
		pipeline.NewPipeline(PipelineLit, stages(PipelineLit, litSource, MeshLayout(), InstanceLayout())...),
		pipeline.NewPipeline(PipelineRibbon, append(stages(PipelineRibbon, ribbonSource, MeshLayout()),
			pipeline.WithBlendMode(pipeline.BlendAlpha),
			pipeline.WithDepthWriteEnabled(false),
		)...),
		pipeline.NewPipeline(PipelineFoliage, append(stages(PipelineFoliage, foliageSource, MeshLayout(), FoliageLayout()),
			pipeline.WithBlendMode(pipeline.BlendAdditive),
			pipeline.WithDepthWriteEnabled(false),
		)...),
		pipeline.NewPipeline(PipelineSparkle, append(stages(PipelineSparkle, sparkleSource, MeshLayout(), SparkleLayout()),
			pipeline.WithBlendMode(pipeline.BlendAdditive),
			pipeline.WithDepthWriteEnabled(false),
		)...),
	}
}

func (s *scene) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.r.RegisterPipelines(Pipelines()...); err != nil {
		return err
	}
	if err := s.r.InitBindGroup(s.cam.BindGroupProvider(), CameraLayout(), nil, nil); err != nil {
		return fmt.Errorf("failed to create camera bind group: %w", err)
	}
	if err := s.r.InitBindGroup(s.frameProvider, FrameLayout(), nil, nil); err != nil {
		return fmt.Errorf("failed to create frame bind group: %w", err)
	}

	for _, d := range s.drawables {
		m := d.mesh
		if err := s.r.InitMeshBuffers(m.MeshProvider(), m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
			return fmt.Errorf("failed to upload %s mesh: %w", d.name, err)
		}
		if d.instances != nil {
			if err := s.r.InitInstanceBuffer(m.MeshProvider(), d.instances(), d.count); err != nil {
				return fmt.Errorf("failed to upload %s instances: %w", d.name, err)
			}
		}
		d.provider = bind_group_provider.NewBindGroupProvider("draw_" + d.name)
		if err := s.r.InitBindGroup(d.provider, DrawLayout(), nil, nil); err != nil {
			return fmt.Errorf("failed to create %s bind group: %w", d.name, err)
		}
		d.buf = make([]byte, d.uniform.Size())
		d.groups = []bind_group_provider.BindGroupProvider{s.cam.BindGroupProvider(), s.frameProvider, d.provider}
		if d.uniform.Model == [16]float32{} {
			common.Identity(d.uniform.Model[:])
		}
	}

	s.writes = make([]bind_group_provider.BufferWrite, 0, 3+2*len(s.drawables))
	s.initialized = true
	log.Printf("[Scene] %s initialized with %d draws and %d lights", s.name, len(s.drawables), len(s.lights))
	return nil
}

func (s *scene) Prepare(elapsed float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.writes = s.writes[:0]

	cam := s.cam.Uniform()
	s.writes = append(s.writes, bind_group_provider.BufferWrite{
		Provider: s.cam.BindGroupProvider(), Binding: 0, Data: cam.Marshal(),
	})

	s.frame = GPUFrameUniform{
		FogColor:    s.fogColor,
		FogNear:     s.fogNear,
		FogFar:      s.fogFar,
		GroupOffset: s.tree.Offset(),
		Time:        elapsed,
	}
	s.frame.MarshalInto(s.frameBuf)
	s.writes = append(s.writes,
		bind_group_provider.BufferWrite{Provider: s.frameProvider, Binding: 0, Data: s.frameBuf},
		bind_group_provider.BufferWrite{Provider: s.frameProvider, Binding: 1, Data: light.MarshalLightBuffer(s.lights, s.ambient)},
	)

	for _, d := range s.drawables {
		if d.update != nil {
			d.update(&d.uniform)
		}
		d.uniform.MarshalInto(d.buf)
		s.writes = append(s.writes, bind_group_provider.BufferWrite{Provider: d.provider, Binding: 0, Data: d.buf})
		if d.instances != nil && !d.static {
			s.writes = append(s.writes, bind_group_provider.BufferWrite{
				Provider: d.mesh.MeshProvider(), Binding: bind_group_provider.InstanceBinding, Data: d.instances(),
			})
		}
	}

	s.r.WriteBuffers(s.writes)
}

func (s *scene) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("scene is not initialized")
	}

	for _, d := range s.drawables {
		if err := s.r.DrawCall(d.pipeline, d.mesh.MeshProvider(), uint32(d.count), d.groups); err != nil {
			return fmt.Errorf("failed to draw %s: %w", d.name, err)
		}
	}
	return nil
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drawables {
		d.mesh.MeshProvider().Release()
		if d.provider != nil {
			d.provider.Release()
		}
	}
	s.frameProvider.Release()
	s.initialized = false
}
