package window

import "testing"

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle("tree"),
		WithMinSize(100, 50),
		WithWidth(800),
		WithHeight(0),
	} {
		opt(w)
	}

	if w.title != "tree" {
		t.Errorf("title = %q, want %q", w.title, "tree")
	}
	if w.minWidth != 100 || w.minHeight != 50 {
		t.Errorf("min size = %dx%d, want 100x50", w.minWidth, w.minHeight)
	}
	if w.Width() != 800 {
		t.Errorf("width = %d, want 800", w.Width())
	}
	if w.Height() != 720 {
		t.Errorf("zero height should be ignored, got %d", w.Height())
	}
}

func TestDragDeltas(t *testing.T) {
	w := &engineWindow{}
	var gotX, gotY float32
	calls := 0
	w.SetDragCallback(func(dx, dy float32) {
		gotX += dx
		gotY += dy
		calls++
	})

	w.pointerMoved(10, 10)
	if calls != 0 {
		t.Fatalf("movement without a pressed button should not drag")
	}

	w.pointerButton(true, 10, 10)
	w.pointerMoved(15, 8)
	w.pointerMoved(20, 4)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if gotX != 10 || gotY != -6 {
		t.Errorf("accumulated delta = (%v, %v), want (10, -6)", gotX, gotY)
	}

	w.pointerButton(false, 20, 4)
	w.pointerMoved(30, 30)
	if calls != 2 {
		t.Errorf("release should end the drag, calls = %d", calls)
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{}
	if w.IsRunning() {
		t.Error("window without a platform handle should not be running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("surface descriptor should be nil before spawn")
	}
	if err := w.Close(); err == nil {
		t.Error("closing an unspawned window should fail")
	}
	w.SetTitle("Gather")
	if w.Title() != "Gather" {
		t.Errorf("title = %q, want Gather", w.Title())
	}
}
