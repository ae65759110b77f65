package component

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/model"
	"github.com/Carmen-Shannon/oxy-tree/engine/morph"
)

// RibbonShape describes the spiral garland.
type RibbonShape struct {
	Turns           float32
	Height          float32
	BaseRadius      float32
	Points          int
	TubeRadius      float32
	TubularSegments int
	RadialSegments  int
}

// DefaultRibbonShape returns the garland wound around the default tree.
//
// Returns:
//   - RibbonShape: 4.5 turns over 12 units, radius 5.2 at the base
func DefaultRibbonShape() RibbonShape {
	return RibbonShape{
		Turns:           4.5,
		Height:          12,
		BaseRadius:      5.2,
		Points:          200,
		TubeRadius:      0.15,
		TubularSegments: 128,
		RadialSegments:  8,
	}
}

// RibbonState is the ribbon's per-frame appearance.
type RibbonState struct {
	Scale    float32
	Opacity  float32
	Emissive float32
	Color    common.RGB
}

var (
	ribbonGold   = common.MustParseHex("#FFD700")
	ribbonSilver = common.MustParseHex("#C0C0C0")
)

type ribbon struct {
	shape     RibbonShape
	curve     *common.CatmullRom
	mesh      model.Mesh
	scheduler morph.Scheduler
	state     RibbonState
}

// Ribbon is the spiral garland. Its tube is built once; each tick only its uniform scale, opacity
// and color change. Scattering grows it to three times its size while it fades out.
type Ribbon interface {
	Component

	// Curve returns the spline the tube follows.
	//
	// Returns:
	//   - *common.CatmullRom: the centre line
	Curve() *common.CatmullRom

	// Mesh returns the tessellated tube.
	//
	// Returns:
	//   - model.Mesh: the tube geometry
	Mesh() model.Mesh

	// State returns the appearance computed by the last Tick.
	//
	// Returns:
	//   - RibbonState: scale, opacity, emissive strength and color
	State() RibbonState

	// Morph returns the ribbon's morph factor.
	//
	// Returns:
	//   - float32: the factor in [0, 1]
	Morph() float32

	// Matrix writes the ribbon's model matrix.
	//
	// Parameters:
	//   - out: destination, at least 16 floats
	Matrix(out []float32)

	// Material returns the shading parameters.
	//
	// Returns:
	//   - Material: the material
	Material() Material
}

var _ Ribbon = &ribbon{}

// NewRibbon builds the garland with the default shape.
//
// Parameters:
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Ribbon: the garland
func NewRibbon(signal morph.Signal, opts ...ComponentBuilderOption) Ribbon {
	return NewRibbonWithShape(DefaultRibbonShape(), signal, opts...)
}

// NewRibbonWithShape builds a garland with a custom shape.
//
// Parameters:
//   - shape: the spiral and tube dimensions
//   - signal: the shared scatter toggle
//   - opts: functional options
//
// Returns:
//   - Ribbon: the garland
func NewRibbonWithShape(shape RibbonShape, signal morph.Signal, opts ...ComponentBuilderOption) Ribbon {
	o := collect(opts)
	curve := common.NewCatmullRom(SpiralPoints(shape))
	r := &ribbon{
		shape:     shape,
		curve:     curve,
		mesh:      model.NewTube(curve.Point, curve.Tangent, shape.TubularSegments, shape.TubeRadius, shape.RadialSegments),
		scheduler: morph.NewScheduler(signal, o.schedOpts...),
	}
	r.update(0, 0)
	return r
}

// SpiralPoints samples the garland's control points from the base (t=0) to the apex (t=1).
// The radius shrinks linearly to zero at the top.
//
// Parameters:
//   - shape: the spiral dimensions
//
// Returns:
//   - [][3]float32: shape.Points+1 points
func SpiralPoints(shape RibbonShape) [][3]float32 {
	n := max(shape.Points, 1)
	points := make([][3]float32, n+1)
	for i := range points {
		t := float32(i) / float32(n)
		angle := t * shape.Turns * 2 * math.Pi
		r := shape.BaseRadius * (1 - t)
		points[i] = [3]float32{
			common.Cos32(angle) * r,
			t*shape.Height - shape.Height/2,
			common.Sin32(angle) * r,
		}
	}
	return points
}

func (r *ribbon) Name() string {
	return "ribbon"
}

func (r *ribbon) Tick(elapsed, deltaTime float32) {
	r.update(elapsed, r.scheduler.Advance(deltaTime))
}

func (r *ribbon) update(elapsed, m float32) {
	breathe := (common.Sin32(elapsed*1.5) + 1) * 0.5
	r.state = RibbonState{
		Scale:    common.Lerp(1, 3, m),
		Opacity:  common.Lerp(RibbonMaterial.Opacity, 0, m),
		Emissive: 0.5 + breathe*0.5,
		Color:    ribbonGold.Blend(ribbonSilver, (common.Sin32(elapsed)+1)*0.5),
	}
}

func (r *ribbon) Curve() *common.CatmullRom {
	return r.curve
}

func (r *ribbon) Mesh() model.Mesh {
	return r.mesh
}

func (r *ribbon) State() RibbonState {
	return r.state
}

func (r *ribbon) Morph() float32 {
	return r.scheduler.Value()
}

func (r *ribbon) Matrix(out []float32) {
	s := r.state.Scale
	common.BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, s, s, s)
}

func (r *ribbon) Material() Material {
	m := RibbonMaterial
	m.Opacity = r.state.Opacity
	return m
}
