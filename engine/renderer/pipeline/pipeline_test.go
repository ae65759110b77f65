package pipeline

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("lit")
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default on")
	}
	if p.BlendMode() != BlendOpaque || p.BlendState() != nil {
		t.Errorf("blend = %v, %+v, want opaque and nil", p.BlendMode(), p.BlendState())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v", p.Topology())
	}
	if p.RenderPipeline() != nil {
		t.Error("unregistered pipeline has a GPU pipeline")
	}
}

func TestNewPipelineOptions(t *testing.T) {
	vs := shader.NewShader("foliage", shader.ShaderTypeVertex, "src")
	fs := shader.NewShader("foliage", shader.ShaderTypeFragment, "src")
	p := NewPipeline("foliage",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthWriteEnabled(false),
		WithBlendMode(BlendAdditive),
		WithCullMode(wgpu.CullModeBack),
	)
	if p.Shader(shader.ShaderTypeVertex) != vs || p.Shader(shader.ShaderTypeFragment) != fs {
		t.Error("shaders not stored")
	}
	if p.DepthWriteEnabled() {
		t.Error("depth write should be off")
	}
	bs := p.BlendState()
	if bs == nil || bs.Color.DstFactor != wgpu.BlendFactorOne {
		t.Errorf("additive blend state = %+v", bs)
	}
	if NewPipeline("ribbon", WithBlendMode(BlendAlpha)).BlendState().Color.DstFactor != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Error("alpha blend should use one-minus-src-alpha")
	}
	if p.CullMode() != wgpu.CullModeBack {
		t.Errorf("CullMode = %v", p.CullMode())
	}
}

func TestValidateStages(t *testing.T) {
	vs := shader.NewShader("lit", shader.ShaderTypeVertex, "src")
	fs := shader.NewShader("lit", shader.ShaderTypeFragment, "src")

	if err := NewPipeline("lit", WithVertexShader(vs), WithFragmentShader(fs)).Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
	if err := NewPipeline("lit", WithVertexShader(vs)).Validate(); !errors.Is(err, ErrMissingStage) {
		t.Errorf("Validate = %v, want ErrMissingStage", err)
	}
	if err := NewPipeline("lit", WithVertexShader(fs), WithFragmentShader(vs)).Validate(); !errors.Is(err, ErrStageMismatch) {
		t.Errorf("Validate = %v, want ErrStageMismatch", err)
	}
}
