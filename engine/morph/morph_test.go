package morph

import (
	"math"
	"testing"
)

const frame = float32(1.0 / 60.0)

func TestStepZeroDelta(t *testing.T) {
	if got := Step(0.3, 1, 0, DefaultRate); got != 0.3 {
		t.Errorf("Step(dt=0) = %v, want 0.3", got)
	}
}

func TestStepClampsLargeDelta(t *testing.T) {
	if got := Step(0.2, 1, 5, DefaultRate); got != 1 {
		t.Errorf("Step(dt=5) = %v, want 1", got)
	}
	if got := Step(0.8, 0, 100, DefaultRate); got != 0 {
		t.Errorf("Step(dt=100) = %v, want 0", got)
	}
}

func TestStepNegativeOrNaNDelta(t *testing.T) {
	if got := Step(0.5, 1, -1, DefaultRate); got != 0.5 {
		t.Errorf("Step(dt=-1) = %v, want 0.5", got)
	}
	if got := Step(0.5, 1, float32(math.NaN()), DefaultRate); got != 0.5 {
		t.Errorf("Step(dt=NaN) = %v, want 0.5", got)
	}
}

func TestSchedulerMonotonicApproach(t *testing.T) {
	state := NewSceneState()
	state.SetScattered(true)
	s := NewScheduler(state)

	prev := s.Value()
	for i := range 600 {
		m := s.Advance(frame)
		if m > 1 {
			t.Fatalf("tick %d: morph %v exceeds 1", i, m)
		}
		if m < prev {
			t.Fatalf("tick %d: morph decreased from %v to %v", i, prev, m)
		}
		if 1-prev > 1e-4 && m <= prev {
			t.Fatalf("tick %d: morph did not increase (%v -> %v)", i, prev, m)
		}
		prev = m
	}
	want := 1 - math.Exp(-20)
	if math.Abs(float64(prev)-want) > 1e-5 {
		t.Errorf("after 10s morph = %v, want about %v", prev, want)
	}
}

func TestSchedulerStaysAssembled(t *testing.T) {
	s := NewScheduler(NewSceneState())
	for range 600 {
		s.Advance(frame)
	}
	if s.Value() != 0 {
		t.Errorf("morph = %v, want exactly 0", s.Value())
	}
}

func TestSchedulerRetarget(t *testing.T) {
	state := NewSceneState()
	state.SetScattered(true)
	s := NewScheduler(state)
	for range 30 {
		s.Advance(frame)
	}
	mid := s.Value()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid-flight morph = %v, want inside (0, 1)", mid)
	}
	state.SetScattered(false)
	if next := s.Advance(frame); next >= mid {
		t.Errorf("after retarget morph = %v, want < %v", next, mid)
	}
}

func TestRapidDoubleToggle(t *testing.T) {
	state := NewSceneState()
	s := NewScheduler(state, WithInitial(0.4))
	if !state.ToggleScatter() {
		t.Fatal("first ToggleScatter returned false")
	}
	if state.ToggleScatter() {
		t.Fatal("second ToggleScatter returned true")
	}
	if got := s.Advance(frame); got >= 0.4 {
		t.Errorf("morph = %v, want moving toward 0 from 0.4", got)
	}
}

func TestSchedulerNilSignal(t *testing.T) {
	s := NewScheduler(nil, WithInitial(1), WithRate(4))
	if s.Rate() != 4 {
		t.Errorf("Rate = %v, want 4", s.Rate())
	}
	if got := s.Advance(frame); got >= 1 {
		t.Errorf("morph = %v, want below 1 with nil signal", got)
	}
}

func TestTarget(t *testing.T) {
	if Target(true) != 1 || Target(false) != 0 {
		t.Errorf("Target(true), Target(false) = %v, %v, want 1, 0", Target(true), Target(false))
	}
}
