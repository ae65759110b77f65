package common

// CatmullRom is a uniform Catmull-Rom spline through a fixed list of control points.
// The curve passes through every point; the ends are extrapolated so the first and
// last segments do not flatten out.
type CatmullRom struct {
	points [][3]float32
}

// NewCatmullRom creates a spline through points. The slice is not copied.
func NewCatmullRom(points [][3]float32) *CatmullRom {
	return &CatmullRom{points: points}
}

// Points returns the control points.
func (c *CatmullRom) Points() [][3]float32 {
	return c.points
}

func (c *CatmullRom) segment(u float32) (p0, p1, p2, p3 [3]float32, t float32) {
	n := len(c.points)
	p := Clamp01(u) * float32(n-1)
	i := int(p)
	if i > n-2 {
		i = n - 2
	}
	t = p - float32(i)

	p1, p2 = c.points[i], c.points[i+1]
	if i > 0 {
		p0 = c.points[i-1]
	} else {
		p0 = Sub3(Scale3(p1, 2), p2)
	}
	if i+2 < n {
		p3 = c.points[i+2]
	} else {
		p3 = Sub3(Scale3(p2, 2), p1)
	}
	return p0, p1, p2, p3, t
}

// Point evaluates the curve at u in [0, 1].
//
// Parameters:
//   - u: curve parameter, clamped to [0, 1]
//
// Returns:
//   - [3]float32: the point on the curve
func (c *CatmullRom) Point(u float32) [3]float32 {
	switch len(c.points) {
	case 0:
		return [3]float32{}
	case 1:
		return c.points[0]
	}
	p0, p1, p2, p3, t := c.segment(u)
	t2, t3 := t*t, t*t*t
	var out [3]float32
	for k := range 3 {
		out[k] = 0.5 * (2*p1[k] +
			(p2[k]-p0[k])*t +
			(2*p0[k]-5*p1[k]+4*p2[k]-p3[k])*t2 +
			(3*p1[k]-p0[k]-3*p2[k]+p3[k])*t3)
	}
	return out
}

// Tangent returns the unit tangent at u in [0, 1].
func (c *CatmullRom) Tangent(u float32) [3]float32 {
	if len(c.points) < 2 {
		return [3]float32{0, 1, 0}
	}
	p0, p1, p2, p3, t := c.segment(u)
	t2 := t * t
	var out [3]float32
	for k := range 3 {
		out[k] = 0.5 * ((p2[k] - p0[k]) +
			2*(2*p0[k]-5*p1[k]+4*p2[k]-p3[k])*t +
			3*(3*p1[k]-p0[k]-3*p2[k]+p3[k])*t2)
	}
	return Normalize3(out)
}
