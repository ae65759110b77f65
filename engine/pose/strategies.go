package pose

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// placeOrnament puts e on the tapering cone surface with +-20% radial jitter.
func placeOrnament(g *generator, e *Element) {
	h := g.float() * g.ornamentBand
	rel := h / g.treeHeight
	r := g.ornamentRadius * (1 - rel) * (0.8 + 0.2*g.float())
	theta := g.float() * 2 * math.Pi

	s := g.between(0.15, 0.45)
	e.Assembled = common.Transform{
		Position: [3]float32{r * common.Cos32(theta), h - g.treeHeight/2, r * common.Sin32(theta)},
		Rotation: [3]float32{g.float() * math.Pi, g.float() * math.Pi, 0},
		Scale:    common.Uniform(s),
	}
	e.Size = s
	e.Color = g.pick(g.ornamentPalette)
}

// placeGift stands e upright on the ground ring just below the tree base. Only yaw is random.
func placeGift(g *generator, e *Element) {
	r := g.between(g.giftRadiusMin, g.giftRadiusMax)
	theta := g.float() * 2 * math.Pi
	y := -g.treeHeight/2 - 0.5 + g.float()*0.5

	s := g.between(0.5, 1.5)
	e.Assembled = common.Transform{
		Position: [3]float32{r * common.Cos32(theta), y, r * common.Sin32(theta)},
		Rotation: [3]float32{0, g.float() * math.Pi, 0},
		Scale:    [3]float32{s, s * (0.5 + g.float()), s},
	}
	e.Size = s
	e.Color = g.pick(g.giftPalette)
}

// placeFoliage fills the cone. The radius uses sqrt sampling so the disk at each
// height is covered uniformly by area.
func placeFoliage(g *generator, e *Element) {
	h := g.float() * g.treeHeight
	rel := h / g.treeHeight
	r := float32(math.Sqrt(float64(g.float()))) * g.foliageRadius * (1 - rel)
	theta := g.float() * 2 * math.Pi
	branch := common.Sin32(rel*20+theta*5) * g.branchAmp

	e.Assembled = common.Transform{
		Position: [3]float32{r*common.Cos32(theta) + branch, h - g.treeHeight/2, r*common.Sin32(theta) + branch},
		Scale:    common.Uniform(1),
	}

	mixed := g.foliageDeep.Blend(g.foliageTeal, g.float()*0.3)
	if g.float() < g.accentChance {
		e.Color = g.foliageAccent
		e.Size = g.between(0.3, 0.7)
	} else {
		e.Color = mixed
		e.Size = g.between(0.1, 0.3)
	}
}

// placeSingleton pins e to the apex.
func placeSingleton(g *generator, e *Element) {
	e.Assembled = common.Transform{
		Position: g.apex,
		Scale:    common.Uniform(1),
	}
	e.Size = 1
	e.Color = g.singletonColor
}
