package component

import "testing"

func TestSparklesStayNearTheirBox(t *testing.T) {
	field := AmbientSparkles(300)
	s := NewSparkles("ambient", field, nil, WithSeed(9))
	if s.Count() != 300 || len(s.Data()) != 300*SparkleStride {
		t.Fatalf("count = %d, data = %d", s.Count(), len(s.Data()))
	}

	for _, elapsed := range []float32{0, 1, 17.5, 300} {
		s.Tick(elapsed, 1.0/60)
		for i := range s.Count() {
			p := s.At(i)
			for k := range 3 {
				limit := field.Extent[k] * (0.5 + sparkleDrift)
				if p[k] < -limit || p[k] > limit {
					t.Fatalf("t=%v sparkle %d axis %d = %v outside ±%v", elapsed, i, k, p[k], limit)
				}
			}
		}
	}
}

func TestSparklesDeterministicWithSeed(t *testing.T) {
	a := NewSparkles("a", StarSparkles(20), nil, WithSeed(3))
	b := NewSparkles("b", StarSparkles(20), nil, WithSeed(3))
	a.Tick(2, 0)
	b.Tick(2, 0)
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("data[%d] differs: %v vs %v", i, a.Data()[i], b.Data()[i])
		}
	}
}

func TestSparklesFollowAnchor(t *testing.T) {
	anchor := [3]float32{0, 6.2, 0}
	s := NewSparkles("star", StarSparkles(20), func() [3]float32 { return anchor }, WithSeed(4))
	before := s.At(0)

	anchor = [3]float32{1, 10, -2}
	s.Tick(0, 0)
	after := s.At(0)

	want := [3]float32{before[0] + 1, before[1] + 3.8, before[2] - 2}
	for k := range 3 {
		if !approx(after[k], want[k], 1e-5) {
			t.Errorf("axis %d = %v, want %v", k, after[k], want[k])
		}
	}
}

func TestSparklesNegativeCount(t *testing.T) {
	s := NewSparkles("none", SparkleField{Count: -5}, nil)
	s.Tick(1, 1)
	if s.Count() != 0 || s.Field().Count != 0 {
		t.Error("negative count should clamp to an empty field")
	}
}
