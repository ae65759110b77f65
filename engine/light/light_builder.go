package light

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// LightBuilderOption configures a Light in NewLight.
type LightBuilderOption func(*lightImpl)

// WithPosition places the light in world space.
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithTarget aims the light from its position at a world-space point, the way the
// scene's key spot looks at the tree. Apply it after WithPosition.
//
// Parameters:
//   - x, y, z: the point to aim at
//
// Returns:
//   - LightBuilderOption: the option
func WithTarget(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = common.Normalize3(common.Sub3([3]float32{x, y, z}, l.position))
	}
}

// WithColor sets the light color.
func WithColor(color common.RGB) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = color
	}
}

// WithIntensity scales the light color. Negative values clamp to zero.
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = max(intensity, 0)
	}
}

// WithRange sets the distance at which point and spot lights fade out. Zero is unbounded.
func WithRange(lightRange float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = max(lightRange, 0)
	}
}

// WithSpotCone sets the full-intensity and cutoff half-angles of a spot light in degrees.
// They are stored as cosines and swapped if given in the wrong order.
//
// Parameters:
//   - innerDeg: half-angle of full intensity
//   - outerDeg: half-angle where the light reaches zero
//
// Returns:
//   - LightBuilderOption: the option
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		if outerDeg < innerDeg {
			innerDeg, outerDeg = outerDeg, innerDeg
		}
		l.innerCone = cosDeg(innerDeg)
		l.outerCone = cosDeg(outerDeg)
	}
}

// WithEnabled sets the initial on/off state. Disabled lights are skipped when marshalled.
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180))
}
