package compositor

import (
	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/Carmen-Shannon/oxy-tree/engine/pose"
)

// Compose blends one element's assembled and scattered poses by morph and applies the
// secondary motion of its category. It keeps no state, so identical inputs always
// produce bit-identical output.
//
// Rotation is interpolated per Euler component rather than spherically. Under large
// angle differences this wobbles, which is the intended look of the scattered cloud.
//
// Parameters:
//   - e: the element to compose (read-only)
//   - morph: the owning set's morph factor in [0, 1]
//   - elapsed: seconds since the scene started
//   - motion: the category's secondary motion strategy
//
// Returns:
//   - common.Transform: the world transform for this frame
func Compose(e *pose.Element, morph, elapsed float32, motion Motion) common.Transform {
	var spin [3]float32
	if motion.Spin != nil {
		spin = motion.Spin(elapsed)
	}
	a, s := &e.Assembled, &e.Scattered

	t := common.Transform{
		Position: common.LerpVec3(a.Position, s.Position, morph),
		Rotation: [3]float32{
			common.Lerp(a.Rotation[0], s.Rotation[0]+spin[0], morph),
			common.Lerp(a.Rotation[1], s.Rotation[1]+spin[1], morph),
			common.Lerp(a.Rotation[2], s.Rotation[2]+spin[2], morph),
		},
		Scale: common.LerpVec3(a.Scale, s.Scale, morph),
	}
	if motion.Adjust != nil {
		motion.Adjust(e, morph, elapsed, &t)
	}
	return t
}

// ComposeInto composes every element into target, one slot per element index.
// A nil or empty target is a no-op.
//
// Parameters:
//   - elements: the set's elements
//   - morph: the set's morph factor
//   - elapsed: seconds since the scene started
//   - motion: the set's secondary motion strategy
//   - target: the render buffer to fill
func ComposeInto(elements []pose.Element, morph, elapsed float32, motion Motion, target Target) {
	if target == nil {
		return
	}
	n := min(len(elements), target.Len())
	for i := 0; i < n; i++ {
		t := Compose(&elements[i], morph, elapsed, motion)
		target.Write(i, &t)
	}
}
