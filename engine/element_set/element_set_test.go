package element_set

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

const frame = float32(1.0 / 60.0)

func TestEmptySetTicks(t *testing.T) {
	for _, c := range []pose.Category{
		pose.CategorySurfaceOrnament,
		pose.CategoryBaseGift,
		pose.CategoryVolumetricFoliage,
		pose.CategoryStaticSingleton,
	} {
		s, err := NewElementSet(c, 0, morph.NewSceneState(), WithTarget(compositor.NewInstanceBuffer(0)))
		if err != nil {
			t.Fatalf("%v: unexpected error %v", c, err)
		}
		if s.Count() != 0 {
			t.Errorf("%v: Count = %d, want 0", c, s.Count())
		}
		s.Tick(1, frame)
		if s.Target().Len() != 0 {
			t.Errorf("%v: target len = %d, want 0", c, s.Target().Len())
		}
	}
}

func TestNegativeCount(t *testing.T) {
	if _, err := NewElementSet(pose.CategoryBaseGift, -1, nil); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestTenSecondsScattered(t *testing.T) {
	state := morph.NewSceneState()
	state.SetScattered(true)
	buf := compositor.NewTransformBuffer(250)
	s, err := NewElementSet(pose.CategorySurfaceOrnament, 250, state,
		WithGenerator(pose.NewGenerator(pose.WithSeed(7))),
		WithTarget(buf),
	)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var elapsed float32
	for range 600 {
		elapsed += frame
		s.Tick(elapsed, frame)
	}
	if m := s.Morph(); math.Abs(float64(1-m)) > 1e-5 {
		t.Fatalf("morph after 10s = %v, want ~1", m)
	}
	for i, e := range s.Elements() {
		got := buf.At(i).Position
		for k := range 3 {
			if math.Abs(float64(got[k]-e.Scattered.Position[k])) > 1e-3 {
				t.Fatalf("element %d position = %v, want %v", i, got, e.Scattered.Position)
			}
		}
	}
}

func TestTenSecondsAssembledHasNoDrift(t *testing.T) {
	buf := compositor.NewTransformBuffer(250)
	s, err := NewElementSet(pose.CategorySurfaceOrnament, 250, morph.NewSceneState(),
		WithGenerator(pose.NewGenerator(pose.WithSeed(7))),
		WithTarget(buf),
	)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var elapsed float32
	for range 600 {
		elapsed += frame
		s.Tick(elapsed, frame)
	}
	if s.Morph() != 0 {
		t.Fatalf("morph = %v, want exactly 0", s.Morph())
	}
	for i, e := range s.Elements() {
		if got := buf.At(i); got != e.Assembled {
			t.Fatalf("element %d = %+v, want %+v", i, got, e.Assembled)
		}
	}
}

func TestNoTargetStillAdvances(t *testing.T) {
	state := morph.NewSceneState()
	state.SetScattered(true)
	s, err := NewElementSet(pose.CategoryBaseGift, 4, state)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m := s.Tick(0, frame); m <= 0 {
		t.Errorf("morph = %v, want > 0", m)
	}
}

func TestDisabledSetSkipsComposition(t *testing.T) {
	state := morph.NewSceneState()
	state.SetScattered(true)
	buf := compositor.NewPositionBuffer(3)
	s, err := NewElementSet(pose.CategoryBaseGift, 3, state, WithTarget(buf), WithEnabled(false))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	s.Tick(1, frame)
	for _, v := range buf.Floats() {
		if v != 0 {
			t.Fatalf("disabled set wrote %v", buf.Floats())
		}
	}
	if s.Morph() == 0 {
		t.Error("disabled set did not advance its morph factor")
	}
	s.SetEnabled(true)
	s.Tick(1, frame)
	if buf.At(0) == [3]float32{} {
		t.Error("re-enabled set did not compose")
	}
}

func TestOptions(t *testing.T) {
	s, err := NewElementSet(pose.CategoryStaticSingleton, 1, nil,
		WithName("star"),
		WithSchedulerOptions(morph.WithRate(4), morph.WithInitial(1)),
	)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if s.Name() != "star" || s.Category() != pose.CategoryStaticSingleton {
		t.Errorf("Name, Category = %q, %v", s.Name(), s.Category())
	}
	if s.Morph() != 1 {
		t.Errorf("initial morph = %v, want 1", s.Morph())
	}
	if s.ID() == 0 {
		t.Error("ID not assigned")
	}
}
