package overlay

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
)

const frame = float32(1.0 / 60.0)

func run(o Overlay, seconds float32) {
	for range int(seconds / frame) {
		o.Update(frame)
	}
}

func TestInitialText(t *testing.T) {
	o := NewOverlay(morph.NewSceneState())
	text := o.Text()
	if text.Title != "Merry Christmas" || text.Subtitle != "Interactive Christmas Tree" {
		t.Errorf("heading = %q / %q", text.Title, text.Subtitle)
	}
	if text.Caption != "SCATTER THE MAGIC" || text.Action != "Release Elements" {
		t.Errorf("assembled text = %q / %q", text.Caption, text.Action)
	}
	if o.Alpha() != 1 || o.Fading() {
		t.Errorf("alpha = %v fading = %v, want 1 and idle", o.Alpha(), o.Fading())
	}
}

func TestStartsScattered(t *testing.T) {
	state := morph.NewSceneState()
	state.SetScattered(true)
	o := NewOverlay(state)
	if got := o.Text().Action; got != "Assemble Tree" {
		t.Errorf("Action = %q, want Assemble Tree", got)
	}
	o.Update(frame)
	if o.Fading() {
		t.Error("no flip happened, overlay should stay idle")
	}
}

func TestToggleCrossFade(t *testing.T) {
	state := morph.NewSceneState()
	o := NewOverlay(state)

	state.ToggleScatter()
	run(o, 0.25)
	if !o.Fading() {
		t.Fatal("expected a fade in progress")
	}
	if a := o.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("mid fade-out alpha = %v, want in (0,1)", a)
	}
	if got := o.Text().Caption; got != "SCATTER THE MAGIC" {
		t.Errorf("caption swapped before fade-out finished: %q", got)
	}

	run(o, 1.5)
	if o.Fading() {
		t.Error("fade still running after its duration")
	}
	if o.Alpha() != 1 {
		t.Errorf("final alpha = %v, want 1", o.Alpha())
	}
	text := o.Text()
	if text.Caption != "GATHER THE SPIRIT" || text.Action != "Assemble Tree" {
		t.Errorf("scattered text = %q / %q", text.Caption, text.Action)
	}
}

func TestFlipBackDuringFadeIn(t *testing.T) {
	state := morph.NewSceneState()
	o := NewOverlay(state)

	state.ToggleScatter()
	run(o, 0.7)
	state.ToggleScatter()
	run(o, 2)

	if o.Alpha() != 1 || o.Fading() {
		t.Errorf("alpha = %v fading = %v, want settled", o.Alpha(), o.Fading())
	}
	if got := o.Text().Caption; got != "SCATTER THE MAGIC" {
		t.Errorf("caption = %q, want the assembled caption", got)
	}
}

func TestInstantFade(t *testing.T) {
	state := morph.NewSceneState()
	o := NewOverlay(state, WithFadeDuration(0), WithTitle("Hello"), WithSubtitle("World"))

	state.ToggleScatter()
	o.Update(frame)
	if o.Fading() || o.Alpha() != 1 {
		t.Errorf("alpha = %v fading = %v, want an instant swap", o.Alpha(), o.Fading())
	}
	text := o.Text()
	if text.Action != "Assemble Tree" || text.Title != "Hello" || text.Subtitle != "World" {
		t.Errorf("text = %+v", text)
	}
}

func TestWindowTitle(t *testing.T) {
	text := Text{Title: "Merry Christmas", Caption: "SCATTER THE MAGIC", Action: "Release Elements"}
	want := "Merry Christmas - SCATTER THE MAGIC [Space: Release Elements]"
	if got := text.WindowTitle(); got != want {
		t.Errorf("WindowTitle() = %q, want %q", got, want)
	}
}

func TestEmptyTitleKeepsDefault(t *testing.T) {
	o := NewOverlay(morph.NewSceneState(), WithTitle(""), WithSubtitle(""))
	text := o.Text()
	if text.Title != "Merry Christmas" || text.Subtitle != "Interactive Christmas Tree" {
		t.Errorf("text = %+v, want the default heading", text)
	}
}
