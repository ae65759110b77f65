package light

import "github.com/Carmen-Shannon/oxy-tree/common"

// DefaultAmbient is the flat light every surface receives.
var DefaultAmbient = [3]float32{0.2, 0.2, 0.2}

// Defaults returns the stock lighting: a warm key spot above and to the side, a teal fill
// behind and a gold kicker below the front.
//
// Returns:
//   - []Light: the lights, freshly allocated
func Defaults() []Light {
	return []Light{
		NewLight(LightTypeSpot,
			WithPosition(10, 20, 10),
			WithTarget(0, 0, 0),
			WithSpotCone(0, 28.6),
			WithColor(common.MustParseHex("#ffebc2")),
			WithIntensity(1.5),
		),
		NewLight(LightTypePoint,
			WithPosition(-10, 5, -10),
			WithColor(common.MustParseHex("#004d40")),
			WithIntensity(1),
		),
		NewLight(LightTypePoint,
			WithPosition(0, -5, 5),
			WithColor(common.MustParseHex("#FFD700")),
			WithIntensity(0.5),
		),
	}
}
