package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"gopkg.in/yaml.v3"
)

var (
	ErrNegativeCount = errors.New("count must be >= 0")
	ErrInvalidRate   = errors.New("morph rate must be > 0")
	ErrInvalidHeight = errors.New("tree height must be > 0")
	ErrInvalidRadius = errors.New("tree radius must be > 0")
	ErrInvalidShell  = errors.New("scatter shell needs scatterMin >= 0 and scatterSpan > 0")
	ErrInvalidWindow = errors.New("window size must be > 0")
	ErrInvalidCamera = errors.New("invalid camera limits")
	ErrEmptyPalette  = errors.New("palette cannot be empty")
	ErrInvalidVolume = errors.New("audio volume must be in [0, 1]")
)

// Vec3 is a YAML-friendly vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Array returns v as an array.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Config describes one tree scene.
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Tree     TreeConfig    `yaml:"tree"`
	Counts   CountsConfig  `yaml:"counts"`
	Morph    MorphConfig   `yaml:"morph"`
	Palettes PaletteConfig `yaml:"palettes"`
	Camera   CameraConfig  `yaml:"camera"`
	Audio    AudioConfig   `yaml:"audio"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	MSAA   uint32 `yaml:"msaa"`
}

// TreeConfig holds the tree's proportions. A zero Seed draws a random one at startup.
type TreeConfig struct {
	Height         float32 `yaml:"height"`
	OrnamentRadius float32 `yaml:"ornamentRadius"`
	FoliageRadius  float32 `yaml:"foliageRadius"`
	ScatterMin     float32 `yaml:"scatterMin"`
	ScatterSpan    float32 `yaml:"scatterSpan"`
	OffsetY        float32 `yaml:"offsetY"`
	Seed           uint64  `yaml:"seed"`
}

type CountsConfig struct {
	Foliage      int `yaml:"foliage"`
	Ornaments    int `yaml:"ornaments"`
	Gifts        int `yaml:"gifts"`
	Sparkles     int `yaml:"sparkles"`
	StarSparkles int `yaml:"starSparkles"`
}

type MorphConfig struct {
	Rate float32 `yaml:"rate"`
}

// PaletteConfig holds every color as a hex string.
type PaletteConfig struct {
	Ornaments     []string `yaml:"ornaments"`
	Gifts         []string `yaml:"gifts"`
	FoliageDeep   string   `yaml:"foliageDeep"`
	FoliageTeal   string   `yaml:"foliageTeal"`
	FoliageAccent string   `yaml:"foliageAccent"`
	Background    string   `yaml:"background"`
}

// CameraConfig places the orbit camera. Angles are in degrees.
type CameraConfig struct {
	Position        Vec3    `yaml:"position"`
	FOV             float32 `yaml:"fov"`
	AutoRotateSpeed float32 `yaml:"autoRotateSpeed"`
	MinDistance     float32 `yaml:"minDistance"`
	MaxDistance     float32 `yaml:"maxDistance"`
	MinPolar        float32 `yaml:"minPolar"`
	MaxPolar        float32 `yaml:"maxPolar"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the configuration of the stock scene.
//
// Returns:
//   - *Config: a new, valid configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Merry Christmas",
			Width:  1280,
			Height: 720,
			VSync:  true,
			MSAA:   4,
		},
		Tree: TreeConfig{
			Height:         12,
			OrnamentRadius: 4.5,
			FoliageRadius:  5,
			ScatterMin:     5,
			ScatterSpan:    15,
			OffsetY:        -2,
		},
		Counts: CountsConfig{
			Foliage:      15000,
			Ornaments:    250,
			Gifts:        40,
			Sparkles:     300,
			StarSparkles: 20,
		},
		Morph: MorphConfig{Rate: 2},
		Palettes: PaletteConfig{
			Ornaments:     []string{"#FFD700", "#C5A000", "#c0c0c0", "#b71c1c"},
			Gifts:         []string{"#FFD700", "#004d40", "#880e4f", "#EEEEEE"},
			FoliageDeep:   "#002200",
			FoliageTeal:   "#004d40",
			FoliageAccent: "#FFD700",
			Background:    "#000500",
		},
		Camera: CameraConfig{
			Position:        Vec3{0, 2, 18},
			FOV:             45,
			AutoRotateSpeed: 0.5,
			MinDistance:     10,
			MaxDistance:     30,
			MinPolar:        45,
			MaxPolar:        100,
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.5},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: if the file cannot be read, parsed, or fails validation
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and that every color parses.
//
// Returns:
//   - error: the first problem found, wrapping one of the package's sentinel errors where one applies
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w, got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Tree.Height <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidHeight, c.Tree.Height)
	}
	if !(c.Tree.OrnamentRadius > 0) || !(c.Tree.FoliageRadius > 0) {
		return fmt.Errorf("%w, got ornament %v foliage %v", ErrInvalidRadius, c.Tree.OrnamentRadius, c.Tree.FoliageRadius)
	}
	if !(c.Tree.ScatterMin >= 0) || !(c.Tree.ScatterSpan > 0) {
		return fmt.Errorf("%w, got [%v, +%v]", ErrInvalidShell, c.Tree.ScatterMin, c.Tree.ScatterSpan)
	}
	counts := map[string]int{
		"foliage":      c.Counts.Foliage,
		"ornaments":    c.Counts.Ornaments,
		"gifts":        c.Counts.Gifts,
		"sparkles":     c.Counts.Sparkles,
		"starSparkles": c.Counts.StarSparkles,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("counts.%s: %w, got %d", name, ErrNegativeCount, n)
		}
	}
	if !(c.Morph.Rate > 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidRate, c.Morph.Rate)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("%w: distance [%v, %v]", ErrInvalidCamera, c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.MinPolar < 0 || c.Camera.MaxPolar > 180 || c.Camera.MaxPolar < c.Camera.MinPolar {
		return fmt.Errorf("%w: polar [%v, %v]", ErrInvalidCamera, c.Camera.MinPolar, c.Camera.MaxPolar)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalidCamera, c.Camera.FOV)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || math.IsNaN(c.Audio.Volume) {
		return fmt.Errorf("%w, got %v", ErrInvalidVolume, c.Audio.Volume)
	}

	if _, err := c.OrnamentPalette(); err != nil {
		return err
	}
	if _, err := c.GiftPalette(); err != nil {
		return err
	}
	if _, _, _, err := c.FoliageColors(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// OrnamentPalette parses the ornament colors.
func (c *Config) OrnamentPalette() ([]common.RGB, error) {
	return parsePalette("ornaments", c.Palettes.Ornaments)
}

// GiftPalette parses the gift colors.
func (c *Config) GiftPalette() ([]common.RGB, error) {
	return parsePalette("gifts", c.Palettes.Gifts)
}

// FoliageColors parses the foliage base, blend and accent colors.
func (c *Config) FoliageColors() (deep, teal, accent common.RGB, err error) {
	if deep, err = common.ParseHex(c.Palettes.FoliageDeep); err != nil {
		return deep, teal, accent, fmt.Errorf("palettes.foliageDeep: %w", err)
	}
	if teal, err = common.ParseHex(c.Palettes.FoliageTeal); err != nil {
		return deep, teal, accent, fmt.Errorf("palettes.foliageTeal: %w", err)
	}
	if accent, err = common.ParseHex(c.Palettes.FoliageAccent); err != nil {
		return deep, teal, accent, fmt.Errorf("palettes.foliageAccent: %w", err)
	}
	return deep, teal, accent, nil
}

// BackgroundColor parses the clear and fog color.
func (c *Config) BackgroundColor() (common.RGB, error) {
	rgb, err := common.ParseHex(c.Palettes.Background)
	if err != nil {
		return rgb, fmt.Errorf("palettes.background: %w", err)
	}
	return rgb, nil
}

func parsePalette(name string, hexes []string) ([]common.RGB, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palettes.%s: %w", name, ErrEmptyPalette)
	}
	p, err := common.ParsePalette(hexes)
	if err != nil {
		return nil, fmt.Errorf("palettes.%s: %w", name, err)
	}
	return p, nil
}
