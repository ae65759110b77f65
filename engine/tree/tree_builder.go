package tree

import "github.com/Carmen-Shannon/oxy-tree/engine/morph"

// TreeBuilderOption is a functional option for configuring a Tree.
type TreeBuilderOption func(*tree)

// WithSceneState shares an existing scatter toggle instead of creating one.
//
// Parameters:
//   - state: the toggle every component follows
//
// Returns:
//   - TreeBuilderOption: a function that applies the state to the tree
func WithSceneState(state morph.SceneState) TreeBuilderOption {
	return func(t *tree) {
		t.state = state
	}
}

// WithCPUPositions makes the foliage compute its blended positions on the CPU every tick.
// The terminal renderer needs this; the GPU path blends in the vertex shader.
func WithCPUPositions(enabled bool) TreeBuilderOption {
	return func(t *tree) {
		t.cpuPositions = enabled
	}
}

// WithWorkers sets how many workers generate element sets. Values below one use a single worker.
func WithWorkers(n int) TreeBuilderOption {
	return func(t *tree) {
		t.workers = n
	}
}
