package component

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
)

func TestSpiralEndpoints(t *testing.T) {
	r := NewRibbon(morph.NewSceneState())
	pts := r.Curve().Points()
	if len(pts) != 201 {
		t.Fatalf("points = %d, want 201", len(pts))
	}

	start, end := r.Curve().Point(0), r.Curve().Point(1)
	if !approx(start[0], 5.2, 1e-5) || !approx(start[1], -6, 1e-5) || !approx(start[2], 0, 1e-5) {
		t.Errorf("start = %v, want (5.2, -6, 0)", start)
	}
	if !approx(end[0], 0, 1e-5) || !approx(end[1], 6, 1e-5) || !approx(end[2], 0, 1e-5) {
		t.Errorf("end = %v, want (0, 6, 0)", end)
	}
}

func TestRibbonTubeCounts(t *testing.T) {
	r := NewRibbon(morph.NewSceneState())
	m := r.Mesh()
	if got, want := len(m.Vertices), 129*9; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 128*8*6; got != want {
		t.Errorf("indices = %d, want %d", got, want)
	}
}

func TestRibbonScatterFades(t *testing.T) {
	state := morph.NewSceneState()
	r := NewRibbon(state)

	st := r.State()
	if st.Scale != 1 || !approx(st.Opacity, 0.8, 1e-6) {
		t.Fatalf("assembled state = %+v, want scale 1 opacity 0.8", st)
	}

	state.SetScattered(true)
	var elapsed float32
	for range 600 {
		elapsed += 1.0 / 60
		r.Tick(elapsed, 1.0/60)
	}
	st = r.State()
	if !approx(st.Scale, 3, 1e-4) || !approx(st.Opacity, 0, 1e-4) {
		t.Errorf("scattered state = %+v, want scale 3 opacity 0", st)
	}
	if st.Emissive < 0.5 || st.Emissive > 1 {
		t.Errorf("emissive = %v, want within [0.5, 1]", st.Emissive)
	}
	if r.Material().Opacity != st.Opacity {
		t.Error("material opacity should follow the state")
	}

	var m [16]float32
	r.Matrix(m[:])
	if !approx(m[0], st.Scale, 1e-6) || !approx(m[5], st.Scale, 1e-6) || !approx(m[10], st.Scale, 1e-6) {
		t.Errorf("matrix diagonal = (%v, %v, %v), want %v", m[0], m[5], m[10], st.Scale)
	}
}

func TestRibbonColorBreathes(t *testing.T) {
	r := NewRibbon(morph.NewSceneState())
	// sin(t) = -1 gives pure gold, sin(t) = 1 pure silver
	r.Tick(3*3.14159265/2, 0)
	gold := r.State().Color
	r.Tick(3.14159265/2, 0)
	silver := r.State().Color

	if !approx(gold[0], 1, 1e-3) || !approx(gold[2], 0, 1e-3) {
		t.Errorf("gold = %v", gold)
	}
	if !approx(silver[0], silver[2], 1e-3) || !approx(silver[0], 0.7529, 1e-3) {
		t.Errorf("silver = %v", silver)
	}
}
