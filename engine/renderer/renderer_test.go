package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestMergeBindGroupLayouts(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "scene", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 1, Visibility: wgpu.ShaderStageVertex},
			{Binding: 0, Visibility: wgpu.ShaderStageVertex},
		}},
		1: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex},
		}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "scene frag", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
			{Binding: 2, Visibility: wgpu.ShaderStageFragment},
		}},
		2: {Label: "material", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	if len(merged) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(merged))
	}

	g0 := merged[0]
	if g0.Label != "scene" {
		t.Errorf("expected vertex label to win, got %q", g0.Label)
	}
	if len(g0.Entries) != 3 {
		t.Fatalf("expected 3 entries in group 0, got %d", len(g0.Entries))
	}
	for i, e := range g0.Entries {
		if e.Binding != uint32(i) {
			t.Errorf("entry %d has binding %d, expected sorted bindings", i, e.Binding)
		}
	}
	if g0.Entries[0].Visibility != wgpu.ShaderStageVertex|wgpu.ShaderStageFragment {
		t.Errorf("shared binding should be visible to both stages, got %v", g0.Entries[0].Visibility)
	}
	if g0.Entries[2].Visibility != wgpu.ShaderStageFragment {
		t.Errorf("fragment-only binding visibility changed: %v", g0.Entries[2].Visibility)
	}

	if merged[1].Label != "camera" || merged[2].Label != "material" {
		t.Errorf("single-stage groups should pass through unchanged")
	}
}

func TestParseMSAA(t *testing.T) {
	cases := map[uint32]MSAASampleCount{0: MSAA4x, 1: MSAAOff, 4: MSAA4x, 8: MSAA4x}
	for in, want := range cases {
		if got := ParseMSAA(in); got != want {
			t.Errorf("ParseMSAA(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBuilderOptions(t *testing.T) {
	r := &renderer{}
	WithPresentMode(PresentModeUncapped)(r)
	WithMSAA(MSAAOff)(r)
	WithForceSoftwareRenderer(true)(r)

	if r.pendingPresentMode == nil || *r.pendingPresentMode != PresentModeUncapped {
		t.Error("present mode option not applied")
	}
	if r.pendingMSAA == nil || *r.pendingMSAA != MSAAOff {
		t.Error("msaa option not applied")
	}
	if !r.forceFallbackAdapter {
		t.Error("software renderer option not applied")
	}
}

func TestClearValue(t *testing.T) {
	r := &renderer{}
	WithClearColor(common.RGB{0, 0.02, 0})(r)
	c := clearValue(r.clearColor)
	if c.R != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("unexpected clear value %+v", c)
	}
	if c.G < 0.0199 || c.G > 0.0201 {
		t.Errorf("green channel = %v, want 0.02", c.G)
	}
}
