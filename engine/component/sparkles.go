package component

import (
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// SparkleStride is the number of floats per sparkle in Sparkles.Data:
// position, size, color and opacity.
const SparkleStride = 8

// SparkleField describes a drifting cloud of glints.
type SparkleField struct {
	Count   int
	Extent  [3]float32 // box dimensions centred on the anchor
	Size    float32
	Speed   float32
	Opacity float32
	Color   common.RGB
}

// AmbientSparkles is the gold dust around the whole tree.
func AmbientSparkles(count int) SparkleField {
	return SparkleField{
		Count:   count,
		Extent:  [3]float32{12, 14, 12},
		Size:    2,
		Speed:   0.2,
		Opacity: 0.5,
		Color:   common.MustParseHex("#FFD700"),
	}
}

// StarSparkles is the white glitter hugging the star.
func StarSparkles(count int) SparkleField {
	return SparkleField{
		Count:   count,
		Extent:  [3]float32{2, 2, 2},
		Size:    4,
		Speed:   0.4,
		Opacity: 1,
		Color:   common.RGB{1, 1, 1},
	}
}

// sparkleDrift is the amplitude of the drift path relative to the field extent.
const sparkleDrift = 0.05

type sparkles struct {
	name   string
	field  SparkleField
	base   [][3]float32
	phase  [][3]float32
	anchor func() [3]float32
	data   []float32
}

// Sparkles is a field of glints drifting on slow sine paths. They ignore the morph factor.
type Sparkles interface {
	Component

	// Field returns the field description.
	//
	// Returns:
	//   - SparkleField: the description
	Field() SparkleField

	// Count returns the number of sparkles.
	//
	// Returns:
	//   - int: the count
	Count() int

	// Data returns the per-sparkle attributes updated by Tick, SparkleStride floats each.
	//
	// Returns:
	//   - []float32: the packed attributes
	Data() []float32

	// At returns the position of sparkle i.
	//
	// Parameters:
	//   - i: the sparkle index
	//
	// Returns:
	//   - [3]float32: the position
	At(i int) [3]float32
}

var _ Sparkles = &sparkles{}

// NewSparkles lays out a sparkle field. anchor, if not nil, is read each tick and offsets the whole field.
//
// Parameters:
//   - name: display name
//   - field: the field description
//   - anchor: function returning the field centre, or nil for the origin
//   - opts: functional options (WithSeed)
//
// Returns:
//   - Sparkles: the field
func NewSparkles(name string, field SparkleField, anchor func() [3]float32, opts ...ComponentBuilderOption) Sparkles {
	o := collect(opts)
	var rng *rand.Rand
	if o.seed != nil {
		rng = rand.New(rand.NewPCG(*o.seed, *o.seed^0x5eed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	n := max(field.Count, 0)
	field.Count = n
	s := &sparkles{
		name:   name,
		field:  field,
		base:   make([][3]float32, n),
		phase:  make([][3]float32, n),
		anchor: anchor,
		data:   make([]float32, n*SparkleStride),
	}
	for i := range n {
		for k := range 3 {
			s.base[i][k] = (rng.Float32() - 0.5) * field.Extent[k]
			s.phase[i][k] = rng.Float32() * 2 * math.Pi
		}
		d := s.data[i*SparkleStride : (i+1)*SparkleStride]
		d[3] = field.Size * (0.5 + rng.Float32())
		copy(d[4:7], field.Color[:])
		d[7] = field.Opacity
	}
	s.Tick(0, 0)
	return s
}

func (s *sparkles) Name() string {
	return s.name
}

func (s *sparkles) Tick(elapsed, _ float32) {
	var origin [3]float32
	if s.anchor != nil {
		origin = s.anchor()
	}
	t := elapsed * s.field.Speed
	for i := range s.base {
		d := s.data[i*SparkleStride:]
		for k := range 3 {
			amp := s.field.Extent[k] * sparkleDrift
			d[k] = origin[k] + s.base[i][k] + common.Sin32(t+s.phase[i][k])*amp
		}
	}
}

func (s *sparkles) Field() SparkleField {
	return s.field
}

func (s *sparkles) Count() int {
	return len(s.base)
}

func (s *sparkles) Data() []float32 {
	return s.data
}

func (s *sparkles) At(i int) [3]float32 {
	d := s.data[i*SparkleStride:]
	return [3]float32{d[0], d[1], d[2]}
}
