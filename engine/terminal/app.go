package terminal

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/profiler"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
	"github.com/gdamore/tcell/v2"
)

// app is the implementation of the App interface.
type app struct {
	screen   tcell.Screen
	tree     tree.Tree
	overlay  overlay.Overlay
	player   audio.Player
	profiler *profiler.Profiler

	proj    Projector
	canvas  *Canvas
	painter *Painter
	lights  []light.Light
	ambient [3]float32

	frameRate  int
	autoRotate float32
	paused     bool
	elapsed    float32
}

// App runs a tree inside a terminal: it ticks the tree, paints it and handles keys.
type App interface {
	// Run drives the loop until ctx is cancelled or the user quits. The screen must already be initialised.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: ctx's error when cancelled, nil on a user quit
	Run(ctx context.Context) error

	// Step advances the scene by deltaTime seconds and paints one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Step(deltaTime float32)

	// HandleEvent applies one tcell event.
	//
	// Parameters:
	//   - ev: the event
	//
	// Returns:
	//   - bool: false when the event asks to quit
	HandleEvent(ev tcell.Event) bool

	// Canvas returns the grid painted by Step.
	Canvas() *Canvas

	// Projector returns the camera projection.
	Projector() Projector
}

var _ App = &app{}

// NewApp creates an App drawing t onto screen.
//
// Parameters:
//   - screen: an initialised tcell screen
//   - t: the tree, built with CPU foliage positions
//   - options: functional options to configure the app
//
// Returns:
//   - App: the app
func NewApp(screen tcell.Screen, t tree.Tree, options ...AppBuilderOption) App {
	cfg := t.Config()
	background, err := cfg.BackgroundColor()
	if err != nil {
		log.Printf("[Terminal] falling back to black background: %v", err)
	}

	width, height := screen.Size()
	a := &app{
		screen:     screen,
		tree:       t,
		frameRate:  30,
		autoRotate: cfg.Camera.AutoRotateSpeed,
		canvas:     NewCanvas(width, height, background),
		lights:     light.Defaults(),
		ambient:    light.DefaultAmbient,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.overlay == nil {
		a.overlay = overlay.NewOverlay(t.State())
	}
	if a.proj == nil {
		a.proj = NewProjector(width, height, cfg.Camera.Position.Array(), [3]float32{}, cfg.Camera.FOV)
	}
	a.painter = NewPainter(a.proj, a.canvas)
	a.painter.SetLights(a.lights, a.ambient)
	return a
}

func (a *app) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	frame := time.Second / time.Duration(max(a.frameRate, 1))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			a.Step(dt)
			a.canvas.Flush(a.screen)
		}
	}
}

func (a *app) Step(deltaTime float32) {
	a.elapsed += deltaTime
	a.tree.Tick(a.elapsed, deltaTime)
	a.overlay.Update(deltaTime)
	if !a.paused {
		a.proj.Orbit(autoRotateRate(a.autoRotate)*deltaTime, 0)
	}
	a.painter.Paint(a.tree, a.overlay)
	if a.profiler != nil {
		a.profiler.Tick(a.tree.Morph())
	}
}

// autoRotateRate converts a configured speed to radians per second: one orbit per minute at speed 1,
// the same rate as the windowed camera.
func autoRotateRate(speed float32) float32 {
	return 2 * math.Pi / 60 * speed
}

func (a *app) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.toggle()
		case tcell.KeyLeft:
			a.proj.Orbit(-0.1, 0)
		case tcell.KeyRight:
			a.proj.Orbit(0.1, 0)
		case tcell.KeyUp:
			a.proj.Orbit(0, 0.05)
		case tcell.KeyDown:
			a.proj.Orbit(0, -0.05)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.toggle()
			case 'p':
				a.paused = !a.paused
			case 'm':
				if a.player != nil {
					a.player.ToggleMute()
				}
			case '+', '=':
				a.proj.Zoom(0.9)
			case '-':
				a.proj.Zoom(1.1)
			}
		}
	case *tcell.EventResize:
		width, height := ev.Size()
		a.proj.Resize(width, height)
		a.canvas.Resize(width, height)
		a.screen.Sync()
	}
	return true
}

func (a *app) toggle() {
	scattered := a.tree.ToggleScatter()
	if a.player != nil {
		a.player.Chime(scattered)
	}
}

func (a *app) Canvas() *Canvas {
	return a.canvas
}

func (a *app) Projector() Projector {
	return a.proj
}
