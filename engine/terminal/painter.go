package terminal

import (
	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/compositor"
	"github.com/Carmen-Shannon/oxy-tree/engine/component"
	"github.com/Carmen-Shannon/oxy-tree/engine/light"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
)

// glyphs per element kind
const (
	glyphFoliage  = '.'
	glyphOrnament = 'o'
	glyphGift     = '#'
	glyphStar     = '*'
	glyphRibbon   = '~'
	glyphSparkle  = '\''
)

var (
	overlayGold  = common.MustParseHex("#E5C100")
	overlayWhite = common.RGB{0.8, 0.8, 0.8}
)

// Painter draws a tree and its overlay onto a Canvas. Ornaments and gifts are lit with the
// same lights as the GPU scene; everything else keeps its emissive color.
type Painter struct {
	proj          Projector
	canvas        *Canvas
	ribbonSamples int
	model         [16]float32

	lights  []light.Light
	ambient [3]float32
}

// NewPainter creates a Painter drawing through proj onto canvas.
//
// Parameters:
//   - proj: the camera projection
//   - canvas: the target grid
//
// Returns:
//   - *Painter: the painter
func NewPainter(proj Projector, canvas *Canvas) *Painter {
	return &Painter{
		proj:          proj,
		canvas:        canvas,
		ribbonSamples: 160,
		lights:        light.Defaults(),
		ambient:       light.DefaultAmbient,
	}
}

// SetLights replaces the lights used for ornaments and gifts. Nil lights leave only ambient.
//
// Parameters:
//   - lights: the lights
//   - ambient: the ambient color
func (p *Painter) SetLights(lights []light.Light, ambient [3]float32) {
	p.lights, p.ambient = lights, ambient
}

// Paint clears the canvas and draws every component of t, then the overlay when o is non-nil.
// The tree's foliage must have been built with CPU positions to appear.
//
// Parameters:
//   - t: the tree
//   - o: the overlay, may be nil
func (p *Painter) Paint(t tree.Tree, o overlay.Overlay) {
	p.canvas.Clear()
	offset := t.Offset()

	if positions := t.Foliage().Positions(); positions != nil {
		static := t.Foliage().StaticData()
		for i := range positions.Len() {
			c := static[i*component.FoliageStride+6 : i*component.FoliageStride+9]
			p.plot(common.Add3(positions.At(i), offset), glyphFoliage, common.RGB{c[0], c[1], c[2]}.Scale(1.5))
		}
	}

	p.instances(t.Ornaments().Buffer(), offset, glyphOrnament, true)
	p.instances(t.Gifts().Buffer(), offset, glyphGift, true)
	p.instances(t.Star().Buffer(), offset, glyphStar, false)
	p.ribbon(t.Ribbon(), offset)
	p.sparkles(t.Sparkles(), offset)
	p.sparkles(t.StarSparkles(), offset)

	if o != nil {
		p.overlay(o)
	}
}

func (p *Painter) plot(world [3]float32, r rune, color common.RGB) {
	if x, y, depth, ok := p.proj.Project(world); ok {
		p.canvas.Plot(x, y, depth, r, color)
	}
}

// instances plots one glyph per instance. Lit glyphs are shaded on the side facing the eye.
func (p *Painter) instances(buf *compositor.InstanceBuffer, offset [3]float32, r rune, lit bool) {
	data := buf.Floats()
	eye := p.proj.Eye()
	for i := range buf.Len() {
		m := buf.Matrix(i)
		attr := data[i*compositor.InstanceStride+16:]
		world := common.Add3([3]float32{m[12], m[13], m[14]}, offset)
		color := common.RGB{attr[0], attr[1], attr[2]}
		if lit {
			normal := common.Normalize3(common.Sub3(eye, world))
			reach := light.Diffuse(p.lights, p.ambient, world, normal)
			color = common.RGB{color[0] * reach[0], color[1] * reach[1], color[2] * reach[2]}
		}
		p.plot(world, r, color)
	}
}

func (p *Painter) ribbon(rb component.Ribbon, offset [3]float32) {
	state := rb.State()
	if state.Opacity < 0.05 {
		return
	}
	rb.Matrix(p.model[:])
	curve := rb.Curve()
	color := state.Color.Scale(state.Opacity)
	for i := range p.ribbonSamples {
		v := curve.Point(float32(i) / float32(p.ribbonSamples-1))
		p.plot(common.Add3(common.TransformPoint(p.model[:], v), offset), glyphRibbon, color)
	}
}

func (p *Painter) sparkles(s component.Sparkles, offset [3]float32) {
	field := s.Field()
	color := field.Color.Scale(field.Opacity)
	for i := range s.Count() {
		p.plot(common.Add3(s.At(i), offset), glyphSparkle, color)
	}
}

// overlay writes the heading top-left and the caption with its action centred at the bottom.
// The caption dims with the fade alpha.
func (p *Painter) overlay(o overlay.Overlay) {
	text := o.Text()
	w, h := p.canvas.Size()
	p.canvas.Text(2, 1, text.Title, overlayGold)
	p.canvas.Text(2, 2, text.Subtitle, overlayWhite)

	alpha := o.Alpha()
	caption := text.Caption
	action := "[ " + text.Action + " ]"
	p.canvas.Text((w-len(caption))/2, h-3, caption, overlayGold.Scale(0.8*alpha))
	p.canvas.Text((w-len(action))/2, h-2, action, overlayGold.Scale(alpha))
}
