package scene

import (
	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's display name.
//
// Parameters:
//   - name: the name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithLights replaces the default lights.
//
// Parameters:
//   - lights: the lights, in upload order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append([]light.Light{}, lights...)
	}
}

// WithAmbient sets the ambient light as a color scaled by intensity.
//
// Parameters:
//   - color: the ambient color
//   - intensity: the scale applied to color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbient(color common.RGB, intensity float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambient = [3]float32{color[0] * intensity, color[1] * intensity, color[2] * intensity}
	}
}

// WithFog sets linear distance fog. Fragments fade from their lit color at near to color at far.
//
// Parameters:
//   - color: the fog color, usually the clear color
//   - near: distance where the fog starts
//   - far: distance where the fog is opaque
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFog(color common.RGB, near, far float32) SceneBuilderOption {
	return func(s *scene) {
		s.fogColor = color
		s.fogNear = near
		s.fogFar = max(far, near)
	}
}

// WithParticleScale sets the world size of one particle size unit for the foliage and the sparkles.
// Non-positive values keep the default.
//
// Parameters:
//   - foliage: scale for foliage particles
//   - sparkles: scale for both sparkle fields
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithParticleScale(foliage, sparkles float32) SceneBuilderOption {
	return func(s *scene) {
		if foliage > 0 {
			s.foliageScale = foliage
		}
		if sparkles > 0 {
			s.sparkleScale = sparkles
		}
	}
}
