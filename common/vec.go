package common

import "math"

// Lerp linearly interpolates between a and b by t. t is not clamped.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 interpolates each component of a and b by t.
//
// Parameters:
//   - a: vector at t = 0
//   - b: vector at t = 1
//   - t: interpolation factor
//
// Returns:
//   - [3]float32: the component-wise interpolated vector
func LerpVec3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Length3 returns the Euclidean length of v.
func Length3(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// RotateY rotates v about the vertical axis by angle radians.
//
// Parameters:
//   - v: the vector to rotate
//   - angle: rotation in radians, counter-clockwise looking down -Y
//
// Returns:
//   - [3]float32: the rotated vector
func RotateY(v [3]float32, angle float32) [3]float32 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return [3]float32{v[0]*c - v[2]*s, v[1], v[0]*s + v[2]*c}
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Sin32 and Cos32 are float32 shorthands used by the per-frame math.
func Sin32(v float32) float32 { return float32(math.Sin(float64(v))) }

func Cos32(v float32) float32 { return float32(math.Cos(float64(v))) }

func Add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize3 returns v scaled to unit length, or v unchanged if it has zero length.
func Normalize3(v [3]float32) [3]float32 {
	l := Length3(v)
	if l == 0 {
		return v
	}
	return Scale3(v, 1/l)
}

// RotateAxis rotates v by angle radians about the unit vector axis (Rodrigues' formula).
//
// Parameters:
//   - v: the vector to rotate
//   - axis: the rotation axis, must be normalized
//   - angle: rotation in radians
//
// Returns:
//   - [3]float32: the rotated vector
func RotateAxis(v, axis [3]float32, angle float32) [3]float32 {
	c, s := Cos32(angle), Sin32(angle)
	k := Cross3(axis, v)
	d := Dot3(axis, v) * (1 - c)
	return [3]float32{
		v[0]*c + k[0]*s + axis[0]*d,
		v[1]*c + k[1]*s + axis[1]*d,
		v[2]*c + k[2]*s + axis[2]*d,
	}
}
