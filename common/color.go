package common

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an sRGB color with float channels in [0, 1], laid out as uploaded to the GPU.
type RGB [3]float32

// ParseHex parses a "#RRGGBB" (or "#RGB") string into an RGB.
//
// Parameters:
//   - hex: the color string, leading '#' required
//
// Returns:
//   - RGB: the parsed color
//   - error: an error if the string is not a valid hex color
func ParseHex(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// MustParseHex is ParseHex for compile-time constants; it panics on malformed input.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses every entry of hexes.
//
// Parameters:
//   - hexes: hex color strings
//
// Returns:
//   - []RGB: parsed colors in input order
//   - error: the first parse error encountered
func ParsePalette(hexes []string) ([]RGB, error) {
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// FromColorful converts a colorful.Color into an RGB.
func FromColorful(c colorful.Color) RGB {
	return RGB{float32(c.R), float32(c.G), float32(c.B)}
}

// Colorful converts c back into a colorful.Color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}

// Blend interpolates from c toward other in RGB space by t.
//
// Parameters:
//   - other: the color at t = 1
//   - t: blend factor in [0, 1]
//
// Returns:
//   - RGB: the blended color
func (c RGB) Blend(other RGB, t float32) RGB {
	return FromColorful(c.Colorful().BlendRgb(other.Colorful(), float64(t)))
}

// Scale multiplies every channel by s.
func (c RGB) Scale(s float32) RGB {
	return RGB{c[0] * s, c[1] * s, c[2] * s}
}

// RGB255 returns 8-bit channels, used by the terminal backend.
func (c RGB) RGB255() (r, g, b uint8) {
	return c.Colorful().Clamped().RGB255()
}
