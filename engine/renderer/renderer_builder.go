package renderer

import "github.com/Carmen-Shannon/oxy-tree/common"

// RendererBuilderOption configures the renderer in NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode picks VSync or Uncapped presentation. It is applied when the surface is first configured.
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the sample count of the color and depth targets. Defaults to MSAA4x.
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithClearColor sets the color the main pass clears to. The scene passes its fog color.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - RendererBuilderOption: the option
func WithClearColor(color common.RGB) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithForceSoftwareRenderer requests the fallback adapter, for machines without a GPU.
// A software Vulkan driver such as lavapipe must be installed.
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
