package terminal

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/config"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
	"github.com/gdamore/tcell/v2"
)

func near(got, want int) bool {
	return got >= want-1 && got <= want+1
}

func TestProjectorOriginAtCentre(t *testing.T) {
	p := NewProjector(80, 24, [3]float32{0, 2, 18}, [3]float32{}, 45)
	x, y, depth, ok := p.Project([3]float32{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if !near(x, 40) || !near(y, 12) {
		t.Errorf("origin at (%d, %d), want about (40, 12)", x, y)
	}
	if depth <= 0 || depth >= 1 {
		t.Errorf("depth = %v, want in (0, 1)", depth)
	}

	p.Resize(160, 48)
	if x, y, _, _ = p.Project([3]float32{}); !near(x, 80) || !near(y, 24) {
		t.Errorf("after resize origin at (%d, %d), want about (80, 24)", x, y)
	}

	p.Orbit(1.2, 0.3)
	if x, y, _, _ = p.Project([3]float32{}); !near(x, 80) || !near(y, 24) {
		t.Errorf("orbiting moved the target to (%d, %d)", x, y)
	}
}

func TestProjectorOrientation(t *testing.T) {
	p := NewProjector(80, 24, [3]float32{0, 0, 18}, [3]float32{}, 45)
	_, top, _, _ := p.Project([3]float32{0, 3, 0})
	_, bottom, _, _ := p.Project([3]float32{0, -3, 0})
	if top >= bottom {
		t.Errorf("+Y row %d should be above -Y row %d", top, bottom)
	}
	left, _, _, _ := p.Project([3]float32{-3, 0, 0})
	right, _, _, _ := p.Project([3]float32{3, 0, 0})
	if left >= right {
		t.Errorf("-X column %d should be left of +X column %d", left, right)
	}
}

func TestProjectorRejectsHiddenPoints(t *testing.T) {
	p := NewProjector(80, 24, [3]float32{0, 2, 18}, [3]float32{}, 45)
	if _, _, _, ok := p.Project([3]float32{0, 2, 40}); ok {
		t.Error("point behind the eye projected")
	}
	if _, _, _, ok := p.Project([3]float32{500, 0, 0}); ok {
		t.Error("point far off screen projected")
	}
}

func TestCanvasDepthTest(t *testing.T) {
	c := NewCanvas(4, 3, common.RGB{})
	red, green := common.RGB{1, 0, 0}, common.RGB{0, 1, 0}

	if !c.Plot(1, 1, 0.5, 'a', red) {
		t.Fatal("first plot rejected")
	}
	if c.Plot(1, 1, 0.7, 'b', green) {
		t.Error("farther glyph overwrote a nearer one")
	}
	if !c.Plot(1, 1, 0.2, 'c', green) {
		t.Error("nearer glyph rejected")
	}
	if got := c.At(1, 1); got.Rune != 'c' || got.Color != green {
		t.Errorf("cell = %+v", got)
	}
	if c.Plot(4, 0, 0, 'x', red) || c.Plot(0, -1, 0, 'x', red) {
		t.Error("out of range plot accepted")
	}

	c.Clear()
	if got := c.At(1, 1).Rune; got != ' ' {
		t.Errorf("cleared cell = %q", got)
	}
}

func TestCanvasFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	c := NewCanvas(10, 2, common.RGB{})
	c.Text(0, 0, "Merry Christmas", common.RGB{1, 1, 1})
	c.Flush(screen)

	cells, w, _ := screen.GetContents()
	var row strings.Builder
	for x := range w {
		row.WriteString(string(cells[x].Runes))
	}
	if got := row.String(); got != "Merry Chri" {
		t.Errorf("first row = %q, want the clipped title", got)
	}
}

func testTree(t *testing.T) tree.Tree {
	t.Helper()
	cfg := config.Default()
	cfg.Tree.Seed = 11
	cfg.Counts.Foliage = 300
	cfg.Counts.Ornaments = 20
	cfg.Counts.Gifts = 6
	cfg.Counts.Sparkles = 20
	cfg.Counts.StarSparkles = 4
	tr, err := tree.NewTree(cfg, tree.WithCPUPositions(true))
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tr
}

func newTestApp(t *testing.T) (App, tree.Tree) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	tr := testTree(t)
	return NewApp(screen, tr, WithAutoRotate(0)), tr
}

func rowText(c *Canvas, y int) string {
	w, _ := c.Size()
	var b strings.Builder
	for x := range w {
		b.WriteRune(c.At(x, y).Rune)
	}
	return b.String()
}

func TestAppPaintsTreeAndOverlay(t *testing.T) {
	a, _ := newTestApp(t)
	a.Step(1.0 / 60.0)

	c := a.Canvas()
	w, h := c.Size()
	counts := map[rune]int{}
	for y := range h {
		for x := range w {
			counts[c.At(x, y).Rune]++
		}
	}
	for _, r := range []rune{glyphFoliage, glyphOrnament, glyphStar} {
		if counts[r] == 0 {
			t.Errorf("no %q glyphs painted", r)
		}
	}

	if got := rowText(c, 1); !strings.Contains(got, "Merry Christmas") {
		t.Errorf("title row = %q", got)
	}
	if got := rowText(c, h-3); !strings.Contains(got, "SCATTER THE MAGIC") {
		t.Errorf("caption row = %q", got)
	}
	if got := rowText(c, h-2); !strings.Contains(got, "Release Elements") {
		t.Errorf("action row = %q", got)
	}
}

func TestAppKeys(t *testing.T) {
	a, tr := newTestApp(t)

	if !a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !tr.State().IsScattered() {
		t.Error("space did not toggle the tree")
	}
	a.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if tr.State().IsScattered() {
		t.Error("enter did not toggle the tree back")
	}

	a.HandleEvent(tcell.NewEventResize(60, 20))
	if w, h := a.Canvas().Size(); w != 60 || h != 20 {
		t.Errorf("canvas size after resize = %dx%d", w, h)
	}
	if w, h := a.Projector().Size(); w != 60 || h != 20 {
		t.Errorf("projector size after resize = %dx%d", w, h)
	}

	if a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
}

func TestAppScatterSpreadsGlyphs(t *testing.T) {
	a, tr := newTestApp(t)
	a.Step(1.0 / 60.0)
	assembled := spread(a.Canvas())

	tr.ToggleScatter()
	for range 240 {
		a.Step(1.0 / 60.0)
	}
	if scattered := spread(a.Canvas()); scattered <= assembled {
		t.Errorf("scattered foliage spans %d columns, assembled %d", scattered, assembled)
	}
}

// spread counts the columns holding at least one foliage glyph.
func spread(c *Canvas) int {
	w, h := c.Size()
	n := 0
	for x := range w {
		for y := range h {
			if c.At(x, y).Rune == glyphFoliage {
				n++
				break
			}
		}
	}
	return n
}

func TestAppUsesInjectedOverlayAndProjector(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	tr := testTree(t)
	proj := NewProjector(80, 30, [3]float32{0, 2, 25}, [3]float32{}, 45)
	o := overlay.NewOverlay(tr.State(), overlay.WithTitle("Happy Holidays"))
	a := NewApp(screen, tr, WithProjector(proj), WithOverlay(o), WithAutoRotate(0))
	if a.Projector() != proj {
		t.Error("app built its own projector")
	}
	a.Step(1.0 / 60.0)
	if got := rowText(a.Canvas(), 1); !strings.Contains(got, "Happy Holidays") {
		t.Errorf("title row = %q", got)
	}
}

func TestAppLightsOrnaments(t *testing.T) {
	paint := func(opts ...AppBuilderOption) *Canvas {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			t.Fatalf("Init: %v", err)
		}
		t.Cleanup(screen.Fini)
		screen.SetSize(100, 40)
		a := NewApp(screen, testTree(t), append(opts, WithAutoRotate(0))...)
		a.Step(1.0 / 60.0)
		return a.Canvas()
	}

	dark := paint(WithLights(nil, [3]float32{}))
	w, h := dark.Size()
	ornaments, stars := 0, 0
	for y := range h {
		for x := range w {
			switch c := dark.At(x, y); c.Rune {
			case glyphOrnament:
				ornaments++
				if c.Color != (common.RGB{}) {
					t.Fatalf("unlit ornament at (%d, %d) has color %v", x, y, c.Color)
				}
			case glyphStar:
				stars++
				if c.Color == (common.RGB{}) {
					t.Fatalf("star at (%d, %d) lost its emissive color", x, y)
				}
			}
		}
	}
	if ornaments == 0 || stars == 0 {
		t.Fatalf("painted %d ornaments and %d stars", ornaments, stars)
	}

	lit := paint(WithLights(nil, [3]float32{1, 1, 1}))
	for y := range h {
		for x := range w {
			if c := lit.At(x, y); c.Rune == glyphOrnament && c.Color == (common.RGB{}) {
				t.Fatalf("ornament at (%d, %d) stayed black under full ambient", x, y)
			}
		}
	}
}
