package tree

import (
	"math"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/engine/config"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
)

func smallConfig(seed uint64) *config.Config {
	cfg := config.Default()
	cfg.Tree.Seed = seed
	cfg.Counts.Foliage = 400
	cfg.Counts.Ornaments = 30
	cfg.Counts.Gifts = 8
	cfg.Counts.Sparkles = 25
	cfg.Counts.StarSparkles = 5
	return cfg
}

func TestNewTreeCounts(t *testing.T) {
	tr, err := NewTree(smallConfig(7))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	if got := tr.Foliage().Set().Count(); got != 400 {
		t.Errorf("foliage count = %d, want 400", got)
	}
	if got := tr.Ornaments().Buffer().Len(); got != 30 {
		t.Errorf("ornament instances = %d, want 30", got)
	}
	if got := tr.Gifts().Buffer().Len(); got != 8 {
		t.Errorf("gift instances = %d, want 8", got)
	}
	if got := tr.Sparkles().Count(); got != 25 {
		t.Errorf("sparkles = %d, want 25", got)
	}
	if got := tr.StarSparkles().Count(); got != 5 {
		t.Errorf("star sparkles = %d, want 5", got)
	}
	if got := len(tr.Components()); got != 7 {
		t.Errorf("components = %d, want 7", got)
	}
	if off := tr.Offset(); off != [3]float32{0, -2, 0} {
		t.Errorf("offset = %v", off)
	}
}

func TestTickOrder(t *testing.T) {
	tr, err := NewTree(smallConfig(1))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	var names []string
	for _, c := range tr.Components() {
		names = append(names, c.Name())
	}
	want := []string{"foliage", "ornament", "ribbon", "star", "gift", "sparkles", "star sparkles"}
	if !slices.Equal(names, want) {
		t.Errorf("tick order = %v, want %v", names, want)
	}
}

func TestToggleMovesEverySet(t *testing.T) {
	tr, err := NewTree(smallConfig(3))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if tr.Morph() != 0 {
		t.Fatalf("initial morph = %v, want 0", tr.Morph())
	}

	if !tr.ToggleScatter() {
		t.Fatal("first toggle should scatter")
	}
	var elapsed float32
	for range 240 {
		elapsed += 1.0 / 60
		tr.Tick(elapsed, 1.0/60)
	}

	for name, m := range map[string]float32{
		"foliage":   tr.Foliage().Set().Morph(),
		"ornaments": tr.Ornaments().Set().Morph(),
		"gifts":     tr.Gifts().Set().Morph(),
		"star":      tr.Star().Set().Morph(),
		"ribbon":    tr.Ribbon().Morph(),
	} {
		if m < 0.99 {
			t.Errorf("%s morph = %v after 4s, want ~1", name, m)
		}
	}

	tr.ToggleScatter()
	for range 240 {
		elapsed += 1.0 / 60
		tr.Tick(elapsed, 1.0/60)
	}
	if tr.Morph() > 0.01 {
		t.Errorf("morph = %v after reassembling, want ~0", tr.Morph())
	}
}

func TestSharedSceneState(t *testing.T) {
	state := morph.NewSceneState()
	tr, err := NewTree(smallConfig(2), WithSceneState(state), WithWorkers(1))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	state.SetScattered(true)
	if !tr.State().IsScattered() {
		t.Error("tree should follow the injected state")
	}
}

func TestSeededTreesMatch(t *testing.T) {
	a, err := NewTree(smallConfig(42))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	b, err := NewTree(smallConfig(42), WithWorkers(1))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if !slices.Equal(a.Foliage().StaticData(), b.Foliage().StaticData()) {
		t.Error("same seed should generate the same foliage regardless of worker count")
	}
	if !slices.Equal(a.Ornaments().Buffer().Floats(), b.Ornaments().Buffer().Floats()) {
		t.Error("same seed should place the same ornaments")
	}
}

func TestCPUPositions(t *testing.T) {
	tr, err := NewTree(smallConfig(5), WithCPUPositions(true))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	tr.Tick(0.5, 1.0/60)
	if p := tr.Foliage().Positions(); p == nil || p.Len() != 400 {
		t.Fatal("CPU foliage positions missing")
	}
}

func TestInvalidPalette(t *testing.T) {
	cfg := smallConfig(1)
	cfg.Palettes.Ornaments = []string{"not a colour"}
	if _, err := NewTree(cfg); err == nil {
		t.Error("expected an error for a bad palette")
	}
}

func TestRibbonFollowsTreeDimensions(t *testing.T) {
	cfg := smallConfig(3)
	cfg.Tree.Height = 20
	cfg.Tree.FoliageRadius = 10
	tr, err := NewTree(cfg)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	curve := tr.Ribbon().Curve()
	top := curve.Point(1)
	apex := tr.Star().Set().Elements()[0].Assembled.Position
	if math.Abs(float64(top[1]-10)) > 1e-3 {
		t.Errorf("ribbon top y = %v, want 10", top[1])
	}
	if gap := apex[1] - top[1]; gap < 0 || gap > 0.5 {
		t.Errorf("star at y=%v sits %v above the ribbon top", apex[1], gap)
	}

	base := curve.Point(0)
	if math.Abs(float64(base[1]+10)) > 1e-3 {
		t.Errorf("ribbon base y = %v, want -10", base[1])
	}
	if r := math.Hypot(float64(base[0]), float64(base[2])); math.Abs(r-10.4) > 1e-3 {
		t.Errorf("ribbon base radius = %v, want 10.4", r)
	}
}
