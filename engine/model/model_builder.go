package model

import (
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer/bind_group_provider"
)

// ModelBuilderOption configures a Model in NewModel.
type ModelBuilderOption func(*model)

// WithName labels the model. The label prefixes its GPU buffer names.
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMeshProvider supplies the provider that will own the vertex and index buffers,
// so several models can be uploaded through one provider.
//
// Parameters:
//   - provider: the destination provider
//
// Returns:
//   - ModelBuilderOption: the option
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}
