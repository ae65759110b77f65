package profiler

import (
	"strings"
	"testing"
	"time"
)

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	var lines []string
	p := NewProfiler(
		WithInterval(time.Second),
		WithClock(func() time.Time { return clock }),
		WithLogger(func(format string, args ...any) {
			lines = append(lines, format)
		}),
	)

	const step = time.Second / 50
	for range 49 {
		clock = clock.Add(step)
		if p.Tick(0.5) {
			t.Fatal("reported before the interval elapsed")
		}
	}
	clock = clock.Add(step)
	if !p.Tick(0.5) {
		t.Fatal("expected a report after one second")
	}
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1", len(lines))
	}

	s := p.Last()
	if s.FPS < 49.9 || s.FPS > 50.1 {
		t.Errorf("FPS = %v, want 50", s.FPS)
	}
	if s.Morph != 0.5 {
		t.Errorf("Morph = %v, want 0.5", s.Morph)
	}
	if !strings.Contains(s.String(), "Morph: 0.500") {
		t.Errorf("unexpected summary %q", s.String())
	}
}
