package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/profiler"
	"github.com/Carmen-Shannon/oxy-tree/engine/scene"
	"github.com/Carmen-Shannon/oxy-tree/engine/window"
)

// engine implements the Engine interface.
// The window's message pump runs on the calling thread; ticking and drawing share one frame goroutine
// so the composed buffers never change while a scene is uploading them.
type engine struct {
	mu      sync.RWMutex
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window  window.Window
	overlay overlay.Overlay
	player  audio.Player

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	tickCallback func(deltaTime float32)

	scenes  map[int]scene.Scene
	sorted  []scene.Scene // scenes in ascending key order, replaced whole on change
	elapsed float32

	lastTitle string

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine drives the tree scenes: it advances every tree, uploads and draws each frame, and turns
// window input into toggles and camera moves.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Overlay returns the text overlay, or nil before a scene is registered.
	//
	// Returns:
	//   - overlay.Overlay: the overlay
	Overlay() overlay.Overlay

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers a function called once per frame after the trees have advanced
	// and before the scenes upload.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are drawn in ascending key order. The lowest key is the primary scene: input and the
	// overlay follow its tree.
	//
	// Parameters:
	//   - key: the z-index determining draw order (lower draws first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Toggle flips the primary tree between assembled and scattered and plays the chime.
	//
	// Returns:
	//   - bool: the toggle value after flipping
	Toggle() bool

	// Run starts the frame loop and pumps window messages until the window closes.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a window is supplied its callbacks are wired to the engine.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		scenes:      make(map[int]scene.Scene),
		running:     false,
		wg:          sync.WaitGroup{},
		profiler:    profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}
	e.mu.Lock()
	e.reorder()
	e.mu.Unlock()

	if e.overlay == nil {
		if s := e.primary(); s != nil {
			e.overlay = overlay.NewOverlay(s.Tree().State())
		}
	}

	if e.window != nil {
		e.wireWindow()
	}

	return e
}

// wireWindow registers the input, resize and title callbacks. Every callback runs on the
// window thread.
func (e *engine) wireWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		for _, s := range e.Scenes() {
			if r := s.Renderer(); r != nil {
				r.Resize(width, height)
			}
			if c := s.Camera(); c != nil {
				c.SetAspect(float32(width) / float32(height))
			}
		}
	})
	e.window.SetKeyDownCallback(e.handleKey)
	e.window.SetDragCallback(func(dx, dy float32) {
		if s := e.primary(); s != nil && s.Camera() != nil {
			if ctrl := s.Camera().Controller(); ctrl != nil {
				ctrl.Drag(dx, dy)
			}
		}
	})
	e.window.SetScrollCallback(func(delta float32) {
		if s := e.primary(); s != nil && s.Camera() != nil {
			if ctrl := s.Camera().Controller(); ctrl != nil {
				ctrl.Zoom(delta)
			}
		}
	})
	e.window.SetUpdateCallback(func() {
		if e.overlay == nil {
			return
		}
		if title := e.overlay.Text().WindowTitle(); title != e.lastTitle {
			e.lastTitle = title
			e.window.SetTitle(title)
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Overlay() overlay.Overlay {
	return e.overlay
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()

	for _, s := range e.Scenes() {
		s.Release()
	}
	if e.player != nil {
		e.player.Close()
	}
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the frame and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleFrames()
	go e.handleQuit()
}

// handleFrames runs the uncapped (or frame-limited) loop until the quit channel closes.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleFrames() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastFrame := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastFrame).Seconds())
			lastFrame = now

			e.frame(dt)

			if e.renderFrameLimit > 0 {
				if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// frame advances every scene by dt and draws them. The first scene's renderer owns the frame:
// BeginFrame once, every scene's draws, then EndFrame and Present once.
func (e *engine) frame(dt float32) {
	e.elapsed += dt
	scenes := e.ordered()

	for _, s := range scenes {
		s.Tree().Tick(e.elapsed, dt)
		if c := s.Camera(); c != nil {
			if ctrl := c.Controller(); ctrl != nil {
				ctrl.Update(dt)
			}
			c.Update()
		}
	}
	if e.overlay != nil {
		e.overlay.Update(dt)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	if len(scenes) == 0 {
		return
	}

	for _, s := range scenes {
		s.Prepare(e.elapsed)
	}

	if r := scenes[0].Renderer(); r != nil {
		if err := r.BeginFrame(); err == nil {
			for _, s := range scenes {
				if err := s.Draw(); err != nil {
					log.Printf("[Engine] scene %s: %v", s.Name(), err)
				}
			}
			r.EndFrame()
			r.Present()
		}
	}

	if e.profilingEnabled.Load() && e.profiler != nil {
		e.profiler.Tick(scenes[0].Tree().Morph())
	}
}

// handleKey maps key presses onto engine actions.
func (e *engine) handleKey(keyCode uint32) {
	switch keyCode {
	case common.KeySpace, common.KeyEnter:
		e.Toggle()
	case common.KeyM:
		if e.player != nil {
			e.player.ToggleMute()
		}
	case common.KeyF:
		if e.profilingEnabled.Load() {
			e.DisableProfiler()
		} else {
			e.EnableProfiler()
		}
	case common.KeyP, common.KeyR:
		s := e.primary()
		if s == nil || s.Camera() == nil || s.Camera().Controller() == nil {
			return
		}
		ctrl := s.Camera().Controller()
		if keyCode == common.KeyP {
			ctrl.SetAutoRotate(!ctrl.AutoRotate())
		} else {
			ctrl.Reset()
		}
	}
}

func (e *engine) Toggle() bool {
	s := e.primary()
	if s == nil {
		return false
	}
	scattered := s.Tree().ToggleScatter()
	if e.player != nil {
		e.player.Chime(scattered)
	}
	return scattered
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	if !e.profilingEnabled.Swap(true) {
		log.Println("[Engine] profiler on")
	}
}

func (e *engine) DisableProfiler() {
	if e.profilingEnabled.Swap(false) {
		log.Println("[Engine] profiler off")
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	e.scenes[key] = s
	e.reorder()
	e.mu.Unlock()

	if e.overlay == nil && e.primary() == s {
		e.overlay = overlay.NewOverlay(s.Tree().State())
	}
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
	e.reorder()
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

// reorder rebuilds the sorted scene slice. The caller holds mu.
func (e *engine) reorder() {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	sorted := make([]scene.Scene, len(keys))
	for i, k := range keys {
		sorted[i] = e.scenes[k]
	}
	e.sorted = sorted
}

// ordered returns the scenes in ascending key order. The slice is shared and must not be modified.
func (e *engine) ordered() []scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sorted
}

// primary returns the scene with the lowest key, or nil.
func (e *engine) primary() scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.sorted) == 0 {
		return nil
	}
	return e.sorted[0]
}
