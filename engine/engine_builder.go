package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/profiler"
	"github.com/Carmen-Shannon/oxy-tree/engine/scene"
	"github.com/Carmen-Shannon/oxy-tree/engine/window"
)

// EngineBuilderOption configures the Engine in NewEngine.
type EngineBuilderOption func(*engine)

// WithProfiling turns the once-per-second profiler log on or off. It can also be
// flipped later with EnableProfiler and DisableProfiler.
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler, for example one with a shorter interval.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose messages the engine pumps. Its key, drag, scroll and
// resize callbacks are wired to the tree toggle and the cameras.
//
// Parameters:
//   - w: an open window
//
// Returns:
//   - EngineBuilderOption: the option
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene under key. Scenes draw in ascending key order and the
// lowest key is the primary scene that drives the overlay.
//
// Parameters:
//   - key: draw order
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: the option
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithOverlay replaces the overlay built from the primary scene's toggle.
func WithOverlay(o overlay.Overlay) EngineBuilderOption {
	return func(e *engine) {
		e.overlay = o
	}
}

// WithPlayer attaches the chime player. Without one toggles are silent.
func WithPlayer(p audio.Player) EngineBuilderOption {
	return func(e *engine) {
		e.player = p
	}
}

// WithRenderFrameLimit caps the frame goroutine at fps. Zero or less leaves it uncapped.
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
