package component

// Component is one part of the tree composition. The host calls Tick exactly once per frame,
// in composition order, with the scene clock.
type Component interface {
	// Name returns the component's display name used in logs.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Tick advances the component by one frame. It never allocates.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	//   - deltaTime: seconds since the previous tick
	Tick(elapsed, deltaTime float32)
}

// Material holds the shading parameters a renderer applies to a component's meshes.
type Material struct {
	Metalness float32
	Roughness float32
	Opacity   float32
}

var (
	// OrnamentMaterial is polished metal.
	OrnamentMaterial = Material{Metalness: 0.9, Roughness: 0.1, Opacity: 1}

	// GiftMaterial is matte wrapping paper.
	GiftMaterial = Material{Metalness: 0.1, Roughness: 0.6, Opacity: 1}

	// StarMaterial is glossy and mostly self-lit.
	StarMaterial = Material{Metalness: 0.3, Roughness: 0, Opacity: 1}

	// RibbonMaterial is bright metal. Opacity is driven per frame.
	RibbonMaterial = Material{Metalness: 1, Roughness: 0.2, Opacity: 0.8}
)
