package pose

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// GeneratorBuilderOption is a functional option for configuring a Generator.
type GeneratorBuilderOption func(*generator)

// WithSeed makes generation reproducible by seeding the generator's PCG source.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithSeed(seed uint64) GeneratorBuilderOption {
	return func(g *generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithTreeHeight sets the full tree height. The ornament band follows at height-1.
//
// Parameters:
//   - height: tree height in world units (must be > 0)
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithTreeHeight(height float32) GeneratorBuilderOption {
	return func(g *generator) {
		if height <= 0 {
			return
		}
		g.treeHeight = height
		g.ornamentBand = max(height-1, 0)
		g.apex = [3]float32{0, height/2 + 0.2, 0}
	}
}

// WithOrnamentRadius sets the base radius of the ornament surface.
//
// Parameters:
//   - radius: cone radius at the base for surface ornaments
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithOrnamentRadius(radius float32) GeneratorBuilderOption {
	return func(g *generator) {
		g.ornamentRadius = radius
	}
}

// WithFoliageRadius sets the base radius of the foliage cone.
//
// Parameters:
//   - radius: cone radius at the base for foliage particles
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithFoliageRadius(radius float32) GeneratorBuilderOption {
	return func(g *generator) {
		g.foliageRadius = radius
	}
}

// WithScatterShell sets the spherical shell used for scattered poses.
//
// Parameters:
//   - min: inner radius of the shell
//   - span: outer radius minus inner radius
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithScatterShell(min, span float32) GeneratorBuilderOption {
	return func(g *generator) {
		g.scatterMin = min
		g.scatterSpan = span
	}
}

// WithApex overrides the singleton's assembled position.
func WithApex(x, y, z float32) GeneratorBuilderOption {
	return func(g *generator) {
		g.apex = [3]float32{x, y, z}
	}
}

// WithOrnamentPalette replaces the surface ornament colors.
func WithOrnamentPalette(palette []common.RGB) GeneratorBuilderOption {
	return func(g *generator) {
		g.ornamentPalette = palette
	}
}

// WithGiftPalette replaces the gift box colors.
func WithGiftPalette(palette []common.RGB) GeneratorBuilderOption {
	return func(g *generator) {
		g.giftPalette = palette
	}
}

// WithFoliageColors sets the foliage base gradient and the accent color.
//
// Parameters:
//   - deep: the base needle color
//   - teal: the color the base is blended toward (up to 30%)
//   - accent: the color of the sparse highlight particles
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithFoliageColors(deep, teal, accent common.RGB) GeneratorBuilderOption {
	return func(g *generator) {
		g.foliageDeep = deep
		g.foliageTeal = teal
		g.foliageAccent = accent
	}
}

// WithAccentChance sets the probability that a foliage particle uses the accent color.
//
// Parameters:
//   - p: probability in [0, 1]
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithAccentChance(p float32) GeneratorBuilderOption {
	return func(g *generator) {
		g.accentChance = common.Clamp01(p)
	}
}
