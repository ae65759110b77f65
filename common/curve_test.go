package common

import "testing"

func TestCatmullRomPassesThroughPoints(t *testing.T) {
	pts := [][3]float32{{0, 0, 0}, {1, 2, 0}, {3, 2, 1}, {4, 0, 0}}
	c := NewCatmullRom(pts)
	for i, p := range pts {
		got := c.Point(float32(i) / float32(len(pts)-1))
		for k := range 3 {
			if !near(got[k], p[k], 1e-5) {
				t.Fatalf("Point(%d/3) = %v, want %v", i, got, p)
			}
		}
	}
}

func TestCatmullRomClampsAndDegenerates(t *testing.T) {
	c := NewCatmullRom([][3]float32{{0, 0, 0}, {2, 0, 0}})
	if got := c.Point(-1); got != [3]float32{0, 0, 0} {
		t.Errorf("Point(-1) = %v, want origin", got)
	}
	if got := c.Point(0.5); !near(got[0], 1, 1e-6) {
		t.Errorf("Point(0.5) = %v, want x=1", got)
	}
	if got := c.Tangent(0.5); !near(got[0], 1, 1e-6) {
		t.Errorf("Tangent(0.5) = %v, want +x", got)
	}
	if got := NewCatmullRom(nil).Point(0.3); got != [3]float32{} {
		t.Errorf("empty curve Point = %v", got)
	}
	one := [3]float32{1, 2, 3}
	if got := NewCatmullRom([][3]float32{one}).Point(0.7); got != one {
		t.Errorf("single point curve = %v, want %v", got, one)
	}
}

func TestRotateAxis(t *testing.T) {
	got := RotateAxis([3]float32{1, 0, 0}, [3]float32{0, 0, 1}, 1.5707964)
	if !near(got[0], 0, 1e-6) || !near(got[1], 1, 1e-6) {
		t.Errorf("RotateAxis = %v, want [0 1 0]", got)
	}
	if n := Normalize3([3]float32{3, 0, 4}); !near(Length3(n), 1, 1e-6) {
		t.Errorf("Normalize3 length = %v", Length3(n))
	}
	if z := Normalize3([3]float32{}); z != [3]float32{} {
		t.Errorf("Normalize3(0) = %v", z)
	}
}
