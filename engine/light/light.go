package light

import "github.com/Carmen-Shannon/oxy-tree/common"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	LightTypeDirectional LightType = iota

	// LightTypePoint emits in all directions from a position and fades out at its range.
	LightTypePoint

	// LightTypeSpot emits in a cone from a position along a direction. Attenuates with both
	// distance and angle from the cone axis, controlled by inner and outer cone angles.
	LightTypeSpot
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   [3]float32
	direction  [3]float32
	color      common.RGB
	intensity  float32
	lightRange float32
	innerCone  float32 // stored as cos(angle in radians)
	outerCone  float32 // stored as cos(angle in radians)
	enabled    bool
}

// Light is a light source in the scene's lit pass. Type-specific properties (cone angles for
// spot lights) are ignored by the other types.
//
// Lights are owned by the scene and packed into its uniform each frame with GPU.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized direction the light points.
	//
	// Returns:
	//   - [3]float32: the unit direction
	Direction() [3]float32

	// Color returns the light's RGB color.
	//
	// Returns:
	//   - common.RGB: the color
	Color() common.RGB

	// Intensity returns the scalar multiplier applied to the color.
	//
	// Returns:
	//   - float32: the intensity
	Intensity() float32

	// Range returns the distance at which point and spot lights fade to zero. Zero means unbounded.
	//
	// Returns:
	//   - float32: the range in world units
	Range() float32

	// Enabled reports whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled turns the light on or off.
	//
	// Parameters:
	//   - enabled: the new state
	SetEnabled(enabled bool)

	// Cone returns the cosines of a spot light's full-intensity and cutoff half-angles.
	//
	// Returns:
	//   - inner: cosine of the full-intensity half-angle
	//   - outer: cosine of the cutoff half-angle
	Cone() (inner, outer float32)

	// GPU packs the light for upload.
	//
	// Returns:
	//   - GPULight: the packed light
	GPU() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: [3]float32{0, -1, 0},
		color:     common.RGB{1, 1, 1},
		intensity: 1.0,
		innerCone: 0.9063, // cos(25°)
		outerCone: 0.8192, // cos(35°)
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() common.RGB {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) Cone() (inner, outer float32) {
	return l.innerCone, l.outerCone
}

func (l *lightImpl) GPU() GPULight {
	return GPULight{
		Position:   l.position,
		LightType:  uint32(l.lightType),
		Color:      l.color,
		Intensity:  l.intensity,
		Direction:  l.direction,
		LightRange: l.lightRange,
		InnerCone:  l.innerCone,
		OuterCone:  l.outerCone,
	}
}
