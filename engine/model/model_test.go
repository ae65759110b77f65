package model

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

func checkIndices(t *testing.T, name string, m Mesh) {
	t.Helper()
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("%s: index %d out of range (%d vertices)", name, idx, len(m.Vertices))
		}
	}
	if len(m.Indices)%3 != 0 {
		t.Fatalf("%s: %d indices is not a triangle list", name, len(m.Indices))
	}
}

func TestPrimitiveCounts(t *testing.T) {
	cases := []struct {
		name              string
		mesh              Mesh
		vertices, indices int
	}{
		{"sphere", NewSphere(1, 32, 32), 33 * 33, 6 * 32 * 31},
		{"box", NewBox(1, 1, 1), 24, 36},
		{"octahedron", NewOctahedron(0.8), 24, 24},
		{"quad", NewQuad(), 4, 6},
	}
	for _, c := range cases {
		if len(c.mesh.Vertices) != c.vertices || len(c.mesh.Indices) != c.indices {
			t.Errorf("%s: %d vertices %d indices, want %d and %d",
				c.name, len(c.mesh.Vertices), len(c.mesh.Indices), c.vertices, c.indices)
		}
		checkIndices(t, c.name, c.mesh)
	}
}

func TestSphereRadius(t *testing.T) {
	m := NewSphere(2, 8, 6)
	for _, v := range m.Vertices {
		if math.Abs(float64(common.Length3(v.Position)-2)) > 1e-5 {
			t.Fatalf("vertex %v not on radius 2", v.Position)
		}
	}
}

func TestOctahedronNormalsPointOutward(t *testing.T) {
	for _, v := range NewOctahedron(1).Vertices {
		if common.Dot3(v.Position, v.Normal) <= 0 {
			t.Fatalf("normal %v points inward at %v", v.Normal, v.Position)
		}
	}
}

func TestTubeCountsAndRadius(t *testing.T) {
	line := common.NewCatmullRom([][3]float32{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}})
	m := NewTube(line.Point, line.Tangent, 16, 0.5, 8)
	if len(m.Vertices) != 17*9 || len(m.Indices) != 16*8*6 {
		t.Fatalf("tube: %d vertices %d indices", len(m.Vertices), len(m.Indices))
	}
	checkIndices(t, "tube", m)
	for _, v := range m.Vertices {
		r := math.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if math.Abs(r-0.5) > 1e-4 {
			t.Fatalf("tube vertex %v at radius %v, want 0.5", v.Position, r)
		}
	}
}

func TestNewModelPacksMesh(t *testing.T) {
	mesh := NewBox(2, 2, 2)
	m := NewModel(mesh, WithName("gift"))
	if len(m.VertexData()) != 24*24 || len(m.IndexData()) != 36*4 || m.IndexCount() != 36 {
		t.Errorf("packed sizes = %d, %d, %d", len(m.VertexData()), len(m.IndexData()), m.IndexCount())
	}
	if math.Abs(float64(m.BoundingRadius())-math.Sqrt(3)) > 1e-5 {
		t.Errorf("BoundingRadius = %v, want sqrt(3)", m.BoundingRadius())
	}
	if m.MeshProvider() == nil || m.MeshProvider().Label() != "gift Mesh" {
		t.Errorf("mesh provider label = %q", m.MeshProvider().Label())
	}
	v := GPUVertex{Position: [3]float32{1, 2, 3}}
	if v.Size() != 24 || len(v.Marshal()) != 24 {
		t.Errorf("GPUVertex size = %d", v.Size())
	}
}
