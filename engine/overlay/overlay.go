package overlay

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Text is the overlay copy for one toggle state.
type Text struct {
	Title    string
	Subtitle string
	Caption  string
	Action   string
}

// WindowTitle formats the text for a window title bar.
//
// Returns:
//   - string: the title line
func (t Text) WindowTitle() string {
	return fmt.Sprintf("%s - %s [Space: %s]", t.Title, t.Caption, t.Action)
}

type fadePhase int

const (
	phaseIdle fadePhase = iota
	phaseOut
	phaseIn
)

// overlay is the implementation of the Overlay interface.
type overlay struct {
	mu     sync.Mutex
	signal morph.Signal

	title    string
	subtitle string
	duration float32
	easing   ease.TweenFunc

	// shown is the toggle value whose caption is on screen
	shown bool
	phase fadePhase
	tween *gween.Tween
	alpha float32
}

// Overlay is the text layer over the tree: a fixed title and subtitle plus a caption and an
// action label that depend on the toggle. When the toggle flips the caption fades out, swaps and
// fades back in.
type Overlay interface {
	// Update advances the fade and picks up toggle changes.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous update
	Update(deltaTime float32)

	// Text returns the copy currently on screen.
	//
	// Returns:
	//   - Text: the displayed text
	Text() Text

	// Alpha returns the caption and action opacity in [0, 1]. The title is always opaque.
	//
	// Returns:
	//   - float32: the opacity
	Alpha() float32

	// Fading reports whether a cross-fade is in progress.
	//
	// Returns:
	//   - bool: true while fading
	Fading() bool
}

var _ Overlay = &overlay{}

// NewOverlay creates an Overlay following signal. It starts fully visible, showing the text for the
// signal's current value.
//
// Parameters:
//   - signal: the shared scatter toggle
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the overlay
func NewOverlay(signal morph.Signal, options ...OverlayBuilderOption) Overlay {
	o := &overlay{
		signal:   signal,
		title:    "Merry Christmas",
		subtitle: "Interactive Christmas Tree",
		duration: 1,
		easing:   ease.InOutQuad,
		alpha:    1,
	}
	for _, opt := range options {
		opt(o)
	}
	o.shown = signal.IsScattered()
	return o
}

// TextFor returns the copy shown for a toggle value.
//
// Parameters:
//   - scattered: the toggle value
//
// Returns:
//   - caption: the line above the action
//   - action: the label of the toggle action
func TextFor(scattered bool) (caption, action string) {
	if scattered {
		return "GATHER THE SPIRIT", "Assemble Tree"
	}
	return "SCATTER THE MAGIC", "Release Elements"
}

func (o *overlay) Update(deltaTime float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	target := o.signal.IsScattered()
	half := o.duration / 2

	switch o.phase {
	case phaseIdle:
		if target == o.shown {
			return
		}
		o.fade(phaseOut, 0, half)
	case phaseIn:
		if target != o.shown {
			// flipped back mid fade-in, fade out from the current alpha
			o.fade(phaseOut, 0, half*o.alpha)
		}
	}

	v, done := o.tween.Update(deltaTime)
	o.alpha = v
	if done && o.phase == phaseOut {
		overflow := o.tween.Overflow
		o.shown = target
		o.fade(phaseIn, 1, half)
		v, done = o.tween.Update(overflow)
		o.alpha = v
	}
	if done {
		o.phase = phaseIdle
		o.tween = nil
	}
}

// fade starts a tween from the current alpha. Caller holds o.mu.
func (o *overlay) fade(phase fadePhase, to, duration float32) {
	o.phase = phase
	o.tween = gween.New(o.alpha, to, duration, o.easing)
}

func (o *overlay) Text() Text {
	o.mu.Lock()
	defer o.mu.Unlock()

	caption, action := TextFor(o.shown)
	return Text{Title: o.title, Subtitle: o.subtitle, Caption: caption, Action: action}
}

func (o *overlay) Alpha() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.alpha
}

func (o *overlay) Fading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase != phaseIdle
}
