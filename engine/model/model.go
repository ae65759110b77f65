package model

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	mesh                  Mesh
	meshProvider          bind_group_provider.BindGroupProvider
	boundingRadius        float32
	vertexData, indexData []byte
}

// Model is a GPU-ready mesh: packed vertex and index data plus the BindGroupProvider
// that holds the uploaded buffers once the Renderer has initialized them.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Mesh returns the CPU-side geometry the model was built from.
	//
	// Returns:
	//   - Mesh: the source geometry
	Mesh() Mesh

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// VertexData returns the packed vertex data for upload.
	//
	// Returns:
	//   - []byte: 24 bytes per vertex
	VertexData() []byte

	// IndexData returns the packed index data for upload.
	//
	// Returns:
	//   - []byte: 4 bytes per index
	IndexData() []byte

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel packs a mesh for upload. Without WithMeshProvider a provider labelled
// with the model name is created.
//
// Parameters:
//   - mesh: the geometry to pack
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: the packed model
func NewModel(mesh Mesh, options ...ModelBuilderOption) Model {
	m := &model{
		name: "mesh",
		mesh: mesh,
	}
	for _, opt := range options {
		opt(m)
	}
	m.vertexData = MarshalVertices(mesh.Vertices)
	m.indexData = MarshalIndices(mesh.Indices)
	m.boundingRadius = ComputeBoundingRadius(mesh.Vertices)
	if m.meshProvider == nil {
		m.meshProvider = bind_group_provider.NewBindGroupProvider(m.name + " Mesh")
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Mesh() Mesh {
	return m.mesh
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.mesh.Indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
