package common

import (
	"math"
	"testing"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FFD700")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if !near(c[0], 1, 1e-6) || !near(c[1], 215.0/255.0, 1e-6) || !near(c[2], 0, 1e-6) {
		t.Errorf("ParseHex(#FFD700) = %v, want [1 0.843 0]", c)
	}
}

func TestParseHexInvalid(t *testing.T) {
	if _, err := ParseHex("gold"); err == nil {
		t.Error("ParseHex(gold) returned nil error")
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#FFD700", "#004d40"})
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("len = %d, want 2", len(p))
	}
	if _, err := ParsePalette([]string{"#FFD700", "#zz0000"}); err == nil {
		t.Error("ParsePalette with bad entry returned nil error")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := MustParseHex("#002200")
	b := MustParseHex("#004d40")
	if got := a.Blend(b, 0); got != a {
		t.Errorf("Blend(0) = %v, want %v", got, a)
	}
	got := a.Blend(b, 1)
	for i := range 3 {
		if !near(got[i], b[i], 1e-6) {
			t.Errorf("Blend(1)[%d] = %v, want %v", i, got[i], b[i])
		}
	}
}

func TestRGB255(t *testing.T) {
	r, g, b := MustParseHex("#C0C0C0").RGB255()
	if r != 0xC0 || g != 0xC0 || b != 0xC0 {
		t.Errorf("RGB255 = %d,%d,%d, want 192,192,192", r, g, b)
	}
}
