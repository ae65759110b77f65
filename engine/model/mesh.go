package model

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// Mesh is CPU-side triangle-list geometry.
type Mesh struct {
	Vertices []GPUVertex
	Indices  []uint32
}

// NewSphere builds a UV sphere centered at the origin.
//
// Parameters:
//   - radius: sphere radius
//   - widthSegments: segments around the equator, at least 3
//   - heightSegments: segments from pole to pole, at least 2
//
// Returns:
//   - Mesh: (w+1)*(h+1) vertices and 6*w*(h-1) indices
func NewSphere(radius float32, widthSegments, heightSegments int) Mesh {
	w, h := max(widthSegments, 3), max(heightSegments, 2)
	m := Mesh{Vertices: make([]GPUVertex, 0, (w+1)*(h+1))}
	for iy := 0; iy <= h; iy++ {
		theta := float64(iy) / float64(h) * math.Pi
		for ix := 0; ix <= w; ix++ {
			phi := float64(ix) / float64(w) * 2 * math.Pi
			n := [3]float32{
				float32(-math.Cos(phi) * math.Sin(theta)),
				float32(math.Cos(theta)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, GPUVertex{Position: common.Scale3(n, radius), Normal: n})
		}
	}
	row := uint32(w + 1)
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != h-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

// NewBox builds an axis-aligned box with flat-shaded faces.
//
// Parameters:
//   - width, height, depth: box extents along x, y and z
//
// Returns:
//   - Mesh: 24 vertices and 36 indices
func NewBox(width, height, depth float32) Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	faces := []struct {
		n, u, v [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}
	half := [3]float32{hx, hy, hz}
	m := Mesh{
		Vertices: make([]GPUVertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var p [3]float32
			for k := range 3 {
				p[k] = (f.n[k] + f.u[k]*corner[0] + f.v[k]*corner[1]) * half[k]
			}
			m.Vertices = append(m.Vertices, GPUVertex{Position: p, Normal: f.n})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// NewOctahedron builds a flat-shaded octahedron with its vertices on the axes.
//
// Parameters:
//   - radius: distance from the center to each vertex
//
// Returns:
//   - Mesh: 24 vertices and 24 indices
func NewOctahedron(radius float32) Mesh {
	px := [3]float32{radius, 0, 0}
	nx := [3]float32{-radius, 0, 0}
	py := [3]float32{0, radius, 0}
	ny := [3]float32{0, -radius, 0}
	pz := [3]float32{0, 0, radius}
	nz := [3]float32{0, 0, -radius}
	tris := [8][3][3]float32{
		{px, py, pz}, {pz, py, nx}, {nx, py, nz}, {nz, py, px},
		{px, pz, ny}, {pz, nx, ny}, {nx, nz, ny}, {nz, px, ny},
	}
	m := Mesh{
		Vertices: make([]GPUVertex, 0, 24),
		Indices:  make([]uint32, 0, 24),
	}
	for _, tri := range tris {
		n := common.Normalize3(common.Add3(common.Add3(tri[0], tri[1]), tri[2]))
		for _, p := range tri {
			m.Indices = append(m.Indices, uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, GPUVertex{Position: p, Normal: n})
		}
	}
	return m
}

// NewQuad builds a unit billboard quad in the xy plane, corners at +-0.5.
func NewQuad() Mesh {
	n := [3]float32{0, 0, 1}
	return Mesh{
		Vertices: []GPUVertex{
			{Position: [3]float32{-0.5, -0.5, 0}, Normal: n},
			{Position: [3]float32{0.5, -0.5, 0}, Normal: n},
			{Position: [3]float32{0.5, 0.5, 0}, Normal: n},
			{Position: [3]float32{-0.5, 0.5, 0}, Normal: n},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// NewTube sweeps a circle of the given radius along a curve using parallel-transport
// frames, so the tube does not twist where the curve's curvature changes sign.
//
// Parameters:
//   - point: the curve, sampled at u in [0, 1]
//   - tangent: the curve's unit tangent at u
//   - tubularSegments: segments along the curve
//   - radius: tube radius
//   - radialSegments: segments around the tube
//
// Returns:
//   - Mesh: (tubular+1)*(radial+1) vertices and tubular*radial*6 indices
func NewTube(point, tangent func(u float32) [3]float32, tubularSegments int, radius float32, radialSegments int) Mesh {
	ts, rs := max(tubularSegments, 1), max(radialSegments, 3)

	tangents := make([][3]float32, ts+1)
	for i := range tangents {
		tangents[i] = tangent(float32(i) / float32(ts))
	}
	normals, binormals := parallelTransport(tangents)

	m := Mesh{
		Vertices: make([]GPUVertex, 0, (ts+1)*(rs+1)),
		Indices:  make([]uint32, 0, ts*rs*6),
	}
	for i := 0; i <= ts; i++ {
		p := point(float32(i) / float32(ts))
		for j := 0; j <= rs; j++ {
			v := float32(j) / float32(rs) * 2 * math.Pi
			sin, cos := common.Sin32(v), -common.Cos32(v)
			n := common.Normalize3(common.Add3(common.Scale3(normals[i], cos), common.Scale3(binormals[i], sin)))
			m.Vertices = append(m.Vertices, GPUVertex{Position: common.Add3(p, common.Scale3(n, radius)), Normal: n})
		}
	}
	row := uint32(rs + 1)
	for j := uint32(1); j <= uint32(ts); j++ {
		for i := uint32(1); i <= uint32(rs); i++ {
			a := row*(j-1) + (i - 1)
			b := row*j + (i - 1)
			c := row*j + i
			d := row*(j-1) + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

func parallelTransport(tangents [][3]float32) (normals, binormals [][3]float32) {
	normals = make([][3]float32, len(tangents))
	binormals = make([][3]float32, len(tangents))

	t0 := tangents[0]
	axis := [3]float32{1, 0, 0}
	ax, ay, az := math.Abs(float64(t0[0])), math.Abs(float64(t0[1])), math.Abs(float64(t0[2]))
	if ay <= ax && ay <= az {
		axis = [3]float32{0, 1, 0}
	} else if az <= ax && az <= ay {
		axis = [3]float32{0, 0, 1}
	}
	v := common.Normalize3(common.Cross3(t0, axis))
	normals[0] = common.Cross3(t0, v)
	binormals[0] = common.Cross3(t0, normals[0])

	for i := 1; i < len(tangents); i++ {
		normals[i] = normals[i-1]
		v := common.Cross3(tangents[i-1], tangents[i])
		if common.Length3(v) > 1e-6 {
			v = common.Normalize3(v)
			d := common.Dot3(tangents[i-1], tangents[i])
			theta := float32(math.Acos(float64(max(-1, min(1, d)))))
			normals[i] = common.RotateAxis(normals[i], v, theta)
		}
		binormals[i] = common.Cross3(tangents[i], normals[i])
	}
	return normals, binormals
}
