package compositor

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

// Motion is a category's secondary-motion strategy. Spin is added to the scattered
// rotation before blending, so it fades out as the set assembles. Adjust runs on the
// blended transform. Either may be nil.
type Motion struct {
	Spin   func(elapsed float32) [3]float32
	Adjust func(e *pose.Element, morph, elapsed float32, t *common.Transform)
}

// Still applies no secondary motion.
var Still = Motion{}

// OrnamentMotion tumbles ornaments on x and y while they float.
var OrnamentMotion = Motion{
	Spin: func(elapsed float32) [3]float32 {
		return [3]float32{elapsed * 0.1, elapsed * 0.1, 0}
	},
}

// GiftMotion turns gifts slowly on every axis while they float.
var GiftMotion = Motion{
	Spin: func(elapsed float32) [3]float32 {
		r := elapsed * 0.2
		return [3]float32{r, r, r}
	},
}

// FoliageMotion sways needles in the wind near the assembled state and orbits them
// about the vertical axis once scattered. It mirrors the foliage vertex shader.
var FoliageMotion = Motion{
	Adjust: func(e *pose.Element, morph, elapsed float32, t *common.Transform) {
		t.Position = FoliageOffset(t.Position, e.Random, morph, elapsed)
	},
}

// FoliageOffset applies wind sway and the scattered orbit to an already blended
// particle position.
//
// Parameters:
//   - p: position blended between assembled and scattered by morph
//   - random: the particle's phase in [0, 1)
//   - morph: the morph factor
//   - elapsed: seconds since the scene started
//
// Returns:
//   - [3]float32: the displaced position
func FoliageOffset(p [3]float32, random, morph, elapsed float32) [3]float32 {
	wind := common.Sin32(elapsed*0.5+p[1]*0.5+random*5) * 0.05 * p[1] * (1 - morph)

	if morph > 0.01 {
		orbited := common.RotateY(p, elapsed*0.2*random)
		p[0] = common.Lerp(p[0], orbited[0], morph)
		p[2] = common.Lerp(p[2], orbited[2], morph)
	}

	p[0] += wind
	p[2] += wind * 0.5
	return p
}

// StarMotion spins the apex star and pulses its scale independently of the morph.
var StarMotion = Motion{
	Adjust: func(_ *pose.Element, _, elapsed float32, t *common.Transform) {
		t.Rotation = [3]float32{0, elapsed * 0.5, 0}
		pulse := StarPulse(elapsed)
		t.Scale = [3]float32{t.Scale[0] * pulse, t.Scale[1] * pulse, t.Scale[2] * pulse}
	},
}

// StarPulse is the star's breathing scale multiplier.
func StarPulse(elapsed float32) float32 {
	return 1 + float32(math.Sin(float64(elapsed)*2))*0.1
}

// ForCategory returns the default motion strategy for a pose category.
//
// Parameters:
//   - c: the pose category
//
// Returns:
//   - Motion: the matching strategy, Still for unknown categories
func ForCategory(c pose.Category) Motion {
	switch c {
	case pose.CategorySurfaceOrnament:
		return OrnamentMotion
	case pose.CategoryBaseGift:
		return GiftMotion
	case pose.CategoryVolumetricFoliage:
		return FoliageMotion
	case pose.CategoryStaticSingleton:
		return StarMotion
	default:
		return Still
	}
}
