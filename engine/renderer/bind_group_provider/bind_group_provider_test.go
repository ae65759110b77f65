package bind_group_provider

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewBindGroupProviderLabel(t *testing.T) {
	p := NewBindGroupProvider("Foliage")
	if p.Label() != "Foliage" {
		t.Errorf("Label = %q, want Foliage", p.Label())
	}
	if p.Buffer(0) != nil || p.Buffer(InstanceBinding) != nil || p.InstanceCount() != 0 {
		t.Error("new provider holds GPU resources")
	}
	p.SetIndexCount(6)
	if p.IndexCount() != 6 {
		t.Errorf("IndexCount = %d, want 6", p.IndexCount())
	}
	p.Release()
}

func TestWithBindGroupLayout(t *testing.T) {
	layout := &wgpu.BindGroupLayout{}
	p := NewBindGroupProvider("Ribbon", WithBindGroupLayout(layout))
	if p.BindGroupLayout() != layout {
		t.Error("provider did not keep the supplied layout")
	}
}
