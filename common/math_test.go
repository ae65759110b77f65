package common

import (
	"math"
	"testing"
)

func near3(a, b [3]float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-4 {
			return false
		}
	}
	return true
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	BuildModelMatrix(m[:], 1, 2, 3, 0.3, 0.5, 0.7, 2, 2, 2)
	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Errorf("I*M = %v, want %v", out, m)
	}
}

func TestTransformPoint(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 1, 0, 0, 0, math.Pi/2, 0, 2, 2, 2)
	got := TransformPoint(m[:], [3]float32{1, 0, 0})
	want := [3]float32{1, 0, -2}
	if !near3(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 2, 18, 0, 2, 0, 0, 1, 0)
	if got := TransformPoint(view[:], [3]float32{0, 2, 18}); !near3(got, [3]float32{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := TransformPoint(view[:], [3]float32{0, 2, 0}); !near3(got, [3]float32{0, 0, -18}) {
		t.Errorf("target in view space = %v, want (0, 0, -18)", got)
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32(nil)) != nil {
		t.Error("empty slice should give nil")
	}
	if n := len(SliceToBytes(make([]float32, 4))); n != 16 {
		t.Errorf("len = %d, want 16", n)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "a", "b"); got != "a" {
		t.Errorf("Coalesce = %q, want a", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce = %d, want 0", got)
	}
}
