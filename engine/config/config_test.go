package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.Counts.Ornaments != 250 || cfg.Morph.Rate != 2 {
		t.Errorf("defaults = %+v", cfg.Counts)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
counts:
  ornaments: 10
morph:
  rate: 4
palettes:
  gifts: ["#ff0000"]
camera:
  position: {x: 1, y: 2, z: 3}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Counts.Ornaments != 10 {
		t.Errorf("ornaments = %d, want 10", cfg.Counts.Ornaments)
	}
	if cfg.Counts.Foliage != 15000 {
		t.Errorf("foliage = %d, want default 15000", cfg.Counts.Foliage)
	}
	if cfg.Morph.Rate != 4 {
		t.Errorf("rate = %v, want 4", cfg.Morph.Rate)
	}
	gifts, err := cfg.GiftPalette()
	if err != nil || len(gifts) != 1 || gifts[0][0] != 1 {
		t.Errorf("gifts = %v, %v, want one red", gifts, err)
	}
	if got := cfg.Camera.Position.Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("camera position = %v, want [1 2 3]", got)
	}
	if cfg.Tree.Height != 12 {
		t.Errorf("tree height = %v, want default 12", cfg.Tree.Height)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"negative count", "counts:\n  gifts: -1\n", ErrNegativeCount},
		{"zero rate", "morph:\n  rate: 0\n", ErrInvalidRate},
		{"zero height", "tree:\n  height: 0\n", ErrInvalidHeight},
		{"zero foliage radius", "tree:\n  foliageRadius: 0\n", ErrInvalidRadius},
		{"negative ornament radius", "tree:\n  ornamentRadius: -1\n", ErrInvalidRadius},
		{"negative shell", "tree:\n  scatterMin: -5\n  scatterSpan: -15\n", ErrInvalidShell},
		{"empty shell", "tree:\n  scatterSpan: 0\n", ErrInvalidShell},
		{"empty palette", "palettes:\n  ornaments: []\n", ErrEmptyPalette},
		{"inverted distance", "camera:\n  minDistance: 20\n  maxDistance: 10\n", ErrInvalidCamera},
		{"loud", "audio:\n  volume: 2\n", ErrInvalidVolume},
		{"bad hex", "palettes:\n  background: \"#zz\"\n", nil},
		{"bad yaml", "counts: [", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFoliageColors(t *testing.T) {
	deep, teal, accent, err := Default().FoliageColors()
	if err != nil {
		t.Fatalf("FoliageColors = %v", err)
	}
	if deep == teal || accent[0] != 1 {
		t.Errorf("deep %v teal %v accent %v", deep, teal, accent)
	}
}
