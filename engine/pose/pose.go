package pose

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// Category selects the placement rule used for an element set's assembled pose.
type Category int

const (
	// CategorySurfaceOrnament places elements on the outer surface of the tree cone.
	CategorySurfaceOrnament Category = iota

	// CategoryBaseGift places upright, box-proportioned elements on the ground ring around the trunk.
	CategoryBaseGift

	// CategoryVolumetricFoliage fills the tree cone with area-uniform particles.
	CategoryVolumetricFoliage

	// CategoryStaticSingleton pins the element to the tree apex.
	CategoryStaticSingleton
)

// String returns the category name used in logs.
func (c Category) String() string {
	switch c {
	case CategorySurfaceOrnament:
		return "ornament"
	case CategoryBaseGift:
		return "gift"
	case CategoryVolumetricFoliage:
		return "foliage"
	case CategoryStaticSingleton:
		return "singleton"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Element is one generated particle or instance. All fields are fixed once generated;
// only the consuming set's morph factor changes per frame.
type Element struct {
	Assembled common.Transform // pose as part of the tree
	Scattered common.Transform // pose inside the surrounding cloud
	Size      float32          // point size for particles, base scale for instances
	Color     common.RGB
	Random    float32 // per-element phase in [0, 1)
}

// strategy fills the assembled pose and visual attributes of e.
type strategy func(g *generator, e *Element)

// generator is the implementation of the Generator interface.
// A generator owns its random source and is not safe for concurrent use;
// give every goroutine its own generator.
type generator struct {
	rng *rand.Rand

	treeHeight     float32
	ornamentRadius float32
	ornamentBand   float32
	foliageRadius  float32
	branchAmp      float32

	scatterMin  float32
	scatterSpan float32

	giftRadiusMin float32
	giftRadiusMax float32

	apex           [3]float32
	singletonSpan  float32
	singletonFloor float32
	singletonRise  float32

	ornamentPalette []common.RGB
	giftPalette     []common.RGB
	foliageDeep     common.RGB
	foliageTeal     common.RGB
	foliageAccent   common.RGB
	singletonColor  common.RGB
	accentChance    float32

	strategies map[Category]strategy
}

// Generator produces the dual poses of an element set exactly once, at set construction.
type Generator interface {
	// Generate creates count elements using the placement rule of category.
	// Every call returns freshly allocated elements; no two calls share storage.
	//
	// Parameters:
	//   - count: number of elements (must be >= 0; 0 yields an empty, valid set)
	//   - category: the placement rule to use
	//
	// Returns:
	//   - []Element: exactly count elements
	//   - error: an error if count is negative or category is unknown
	Generate(count int, category Category) ([]Element, error)

	// TreeHeight returns the full height of the tree cone.
	//
	// Returns:
	//   - float32: tree height in world units
	TreeHeight() float32

	// ScatterShell returns the inner radius and radial span of the scatter cloud.
	//
	// Returns:
	//   - min: inner shell radius
	//   - span: outer radius minus inner radius
	ScatterShell() (min, span float32)
}

var _ Generator = &generator{}

// NewGenerator creates a Generator with the default tree proportions. Without WithSeed the
// random source is seeded from the runtime's entropy, so separate runs differ while a
// single generated set stays fixed for the whole session.
//
// Parameters:
//   - options: functional options to override tree dimensions, palettes or the seed
//
// Returns:
//   - Generator: the newly created generator
func NewGenerator(options ...GeneratorBuilderOption) Generator {
	g := &generator{
		treeHeight:     12,
		ornamentRadius: 4.5,
		ornamentBand:   11,
		foliageRadius:  5,
		branchAmp:      0.2,
		scatterMin:     5,
		scatterSpan:    15,
		giftRadiusMin:  3,
		giftRadiusMax:  8,
		apex:           [3]float32{0, 6.2, 0},
		singletonSpan:  15,
		singletonFloor: 10,
		singletonRise:  5,
		ornamentPalette: []common.RGB{
			common.MustParseHex("#FFD700"),
			common.MustParseHex("#C5A000"),
			common.MustParseHex("#c0c0c0"),
			common.MustParseHex("#b71c1c"),
		},
		giftPalette: []common.RGB{
			common.MustParseHex("#FFD700"),
			common.MustParseHex("#004d40"),
			common.MustParseHex("#880e4f"),
			common.MustParseHex("#EEEEEE"),
		},
		foliageDeep:    common.MustParseHex("#002200"),
		foliageTeal:    common.MustParseHex("#004d40"),
		foliageAccent:  common.MustParseHex("#FFD700"),
		singletonColor: common.MustParseHex("#FFD700"),
		accentChance:   0.05,
	}
	g.strategies = map[Category]strategy{
		CategorySurfaceOrnament:   placeOrnament,
		CategoryBaseGift:          placeGift,
		CategoryVolumetricFoliage: placeFoliage,
		CategoryStaticSingleton:   placeSingleton,
	}

	for _, opt := range options {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

func (g *generator) TreeHeight() float32 {
	return g.treeHeight
}

func (g *generator) ScatterShell() (min, span float32) {
	return g.scatterMin, g.scatterSpan
}

func (g *generator) Generate(count int, category Category) ([]Element, error) {
	if count < 0 {
		return nil, fmt.Errorf("pose: count must be >= 0, got %d", count)
	}
	place, ok := g.strategies[category]
	if !ok {
		return nil, fmt.Errorf("pose: unknown category %v", category)
	}

	elements := make([]Element, count)
	for i := range elements {
		e := &elements[i]
		place(g, e)
		if category == CategoryStaticSingleton {
			g.scatterSingleton(e)
		} else {
			g.scatterShell(e)
		}
		e.Random = g.rng.Float32()
	}
	return elements, nil
}

// float returns a uniform sample in [0, 1).
func (g *generator) float() float32 {
	return g.rng.Float32()
}

// between returns a uniform sample in [lo, hi).
func (g *generator) between(lo, hi float32) float32 {
	return lo + g.rng.Float32()*(hi-lo)
}

// pick returns a uniformly chosen palette entry, or white for an empty palette.
func (g *generator) pick(palette []common.RGB) common.RGB {
	if len(palette) == 0 {
		return common.RGB{1, 1, 1}
	}
	return palette[g.rng.IntN(len(palette))]
}

// scatterShell assigns a volume-uniform point in the spherical shell and a random
// full orientation. Scale is carried over from the assembled pose.
func (g *generator) scatterShell(e *Element) {
	r := g.scatterSpan*float32(math.Cbrt(float64(g.float()))) + g.scatterMin
	theta := g.float() * 2 * math.Pi
	phi := float32(math.Acos(float64(2*g.float() - 1)))

	sinPhi := common.Sin32(phi)
	e.Scattered.Position = [3]float32{
		r * sinPhi * common.Cos32(theta),
		r * sinPhi * common.Sin32(theta),
		r * common.Cos32(phi),
	}
	e.Scattered.Rotation = [3]float32{
		g.float() * 2 * math.Pi,
		g.float() * 2 * math.Pi,
		g.float() * 2 * math.Pi,
	}
	e.Scattered.Scale = e.Assembled.Scale
}

// scatterSingleton picks one point in the high-altitude box above the tree.
func (g *generator) scatterSingleton(e *Element) {
	e.Scattered.Position = [3]float32{
		(g.float() - 0.5) * g.singletonSpan,
		g.singletonFloor + g.float()*g.singletonRise,
		(g.float() - 0.5) * g.singletonSpan,
	}
	e.Scattered.Scale = common.Uniform(0.5)
}
