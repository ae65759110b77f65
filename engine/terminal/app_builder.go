package terminal

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/profiler"
)

// AppBuilderOption is a functional option for configuring an App.
type AppBuilderOption func(*app)

// WithFrameRate sets the target frames per second.
//
// Parameters:
//   - fps: frames per second, at least 1
//
// Returns:
//   - AppBuilderOption: a function that applies the rate to the app
func WithFrameRate(fps int) AppBuilderOption {
	return func(a *app) {
		a.frameRate = max(fps, 1)
	}
}

// WithOverlay replaces the default overlay.
func WithOverlay(o overlay.Overlay) AppBuilderOption {
	return func(a *app) {
		a.overlay = o
	}
}

// WithPlayer attaches a chime player. Without one toggles are silent.
func WithPlayer(p audio.Player) AppBuilderOption {
	return func(a *app) {
		a.player = p
	}
}

// WithProfiler attaches a profiler ticked once per frame.
func WithProfiler(p *profiler.Profiler) AppBuilderOption {
	return func(a *app) {
		a.profiler = p
	}
}

// WithProjector replaces the default camera projection.
func WithProjector(p Projector) AppBuilderOption {
	return func(a *app) {
		a.proj = p
	}
}

// WithAutoRotate sets the orbit speed. Zero stops the idle rotation.
func WithAutoRotate(speed float32) AppBuilderOption {
	return func(a *app) {
		a.autoRotate = speed
	}
}

// WithLights replaces the stock lighting of ornaments and gifts.
//
// Parameters:
//   - lights: the lights, nil for ambient only
//   - ambient: the ambient color
//
// Returns:
//   - AppBuilderOption: a function that applies the lighting to the app
func WithLights(lights []light.Light, ambient [3]float32) AppBuilderOption {
	return func(a *app) {
		a.lights, a.ambient = lights, ambient
	}
}
