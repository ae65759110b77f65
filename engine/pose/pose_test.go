package pose

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

const eps = 1e-4

func TestGenerateCount(t *testing.T) {
	g := NewGenerator(WithSeed(1))
	for _, c := range []Category{CategorySurfaceOrnament, CategoryBaseGift, CategoryVolumetricFoliage, CategoryStaticSingleton} {
		els, err := g.Generate(37, c)
		if err != nil {
			t.Fatalf("Generate(%v): %v", c, err)
		}
		if len(els) != 37 {
			t.Errorf("len(Generate(37, %v)) = %d, want 37", c, len(els))
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	els, err := NewGenerator(WithSeed(1)).Generate(0, CategorySurfaceOrnament)
	if err != nil {
		t.Fatalf("Generate(0): %v", err)
	}
	if len(els) != 0 {
		t.Errorf("len = %d, want 0", len(els))
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	if _, err := NewGenerator().Generate(-1, CategoryBaseGift); err == nil {
		t.Error("Generate(-1) returned nil error")
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	if _, err := NewGenerator().Generate(1, Category(42)); err == nil {
		t.Error("Generate with unknown category returned nil error")
	}
}

func TestFoliageInsideCone(t *testing.T) {
	g := NewGenerator(WithSeed(7))
	els, err := g.Generate(5000, CategoryVolumetricFoliage)
	if err != nil {
		t.Fatal(err)
	}
	h := g.TreeHeight()
	// the branch perturbation adds up to 0.2 on both x and z
	slack := float32(0.2*math.Sqrt2) + eps
	for i, e := range els {
		p := e.Assembled.Position
		if p[1] < -h/2 || p[1] > h/2 {
			t.Fatalf("element %d: y = %v, want within [%v, %v]", i, p[1], -h/2, h/2)
		}
		rel := (p[1] + h/2) / h
		radial := float32(math.Hypot(float64(p[0]), float64(p[2])))
		if limit := 5*(1-rel) + slack; radial > limit {
			t.Fatalf("element %d: radius %v at rel height %v exceeds %v", i, radial, rel, limit)
		}
	}
}

func TestScatterShellBounds(t *testing.T) {
	g := NewGenerator(WithSeed(3))
	min, span := g.ScatterShell()
	for _, c := range []Category{CategorySurfaceOrnament, CategoryBaseGift, CategoryVolumetricFoliage} {
		els, err := g.Generate(2000, c)
		if err != nil {
			t.Fatal(err)
		}
		for i, e := range els {
			r := common.Length3(e.Scattered.Position)
			if r < min-eps || r > min+span+eps {
				t.Fatalf("%v element %d: scatter radius %v outside [%v, %v]", c, i, r, min, min+span)
			}
			if e.Scattered.Scale != e.Assembled.Scale {
				t.Fatalf("%v element %d: scatter scale %v != assembled %v", c, i, e.Scattered.Scale, e.Assembled.Scale)
			}
		}
	}
}

func TestOrnamentSurface(t *testing.T) {
	g := NewGenerator(WithSeed(11))
	els, _ := g.Generate(1000, CategorySurfaceOrnament)
	for i, e := range els {
		p := e.Assembled.Position
		h := p[1] + 6
		if h < -eps || h > 11+eps {
			t.Fatalf("element %d: height %v outside [0, 11)", i, h)
		}
		radial := float32(math.Hypot(float64(p[0]), float64(p[2])))
		outer := 4.5 * (1 - h/12)
		if radial > outer+eps || radial < 0.8*outer-eps {
			t.Fatalf("element %d: radius %v outside [%v, %v]", i, radial, 0.8*outer, outer)
		}
		if s := e.Assembled.Scale[0]; s < 0.15 || s >= 0.45 {
			t.Fatalf("element %d: scale %v outside [0.15, 0.45)", i, s)
		}
		if e.Assembled.Rotation[2] != 0 {
			t.Fatalf("element %d: roll = %v, want 0", i, e.Assembled.Rotation[2])
		}
	}
}

func TestGiftsUpright(t *testing.T) {
	els, _ := NewGenerator(WithSeed(5)).Generate(500, CategoryBaseGift)
	for i, e := range els {
		rot := e.Assembled.Rotation
		if rot[0] != 0 || rot[2] != 0 {
			t.Fatalf("element %d: rotation %v has pitch or roll", i, rot)
		}
		p := e.Assembled.Position
		radial := float32(math.Hypot(float64(p[0]), float64(p[2])))
		if radial < 3-eps || radial > 8+eps {
			t.Fatalf("element %d: radius %v outside [3, 8]", i, radial)
		}
		if p[1] < -6.5 || p[1] > -6 {
			t.Fatalf("element %d: y = %v outside [-6.5, -6]", i, p[1])
		}
		sc := e.Assembled.Scale
		if sc[0] != sc[2] {
			t.Fatalf("element %d: width %v != depth %v", i, sc[0], sc[2])
		}
	}
}

func TestSingletonApex(t *testing.T) {
	els, _ := NewGenerator(WithSeed(9)).Generate(1, CategoryStaticSingleton)
	e := els[0]
	if e.Assembled.Position != [3]float32{0, 6.2, 0} {
		t.Errorf("apex = %v, want [0 6.2 0]", e.Assembled.Position)
	}
	p := e.Scattered.Position
	if p[1] < 10 || p[1] > 15 || math.Abs(float64(p[0])) > 7.5 || math.Abs(float64(p[2])) > 7.5 {
		t.Errorf("scatter = %v, want inside the high box", p)
	}
}

func TestFoliageAccentShare(t *testing.T) {
	els, _ := NewGenerator(WithSeed(21)).Generate(20000, CategoryVolumetricFoliage)
	gold := common.MustParseHex("#FFD700")
	accents := 0
	for _, e := range els {
		if e.Color == gold {
			accents++
			if e.Size < 0.3 || e.Size >= 0.7 {
				t.Fatalf("accent size %v outside [0.3, 0.7)", e.Size)
			}
		} else if e.Size < 0.1 || e.Size >= 0.3 {
			t.Fatalf("needle size %v outside [0.1, 0.3)", e.Size)
		}
	}
	share := float64(accents) / float64(len(els))
	if share < 0.035 || share > 0.065 {
		t.Errorf("accent share = %.3f, want about 0.05", share)
	}
}

func TestGenerateDistinctStorage(t *testing.T) {
	g := NewGenerator(WithSeed(2))
	a, _ := g.Generate(4, CategorySurfaceOrnament)
	b, _ := g.Generate(4, CategorySurfaceOrnament)
	a[0].Size = -1
	if b[0].Size == -1 {
		t.Error("two Generate calls share backing storage")
	}
	if a[1].Assembled == b[1].Assembled {
		t.Error("two Generate calls produced identical poses")
	}
}

func TestSeedReproducible(t *testing.T) {
	a, _ := NewGenerator(WithSeed(99)).Generate(50, CategoryVolumetricFoliage)
	b, _ := NewGenerator(WithSeed(99)).Generate(50, CategoryVolumetricFoliage)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("element %d differs between identically seeded generators", i)
		}
	}
}
