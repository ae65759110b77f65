package morph

import "sync/atomic"

// Signal is the read side of the scatter toggle. Every element set polls it once per tick.
type Signal interface {
	// IsScattered reports whether the scene should currently move toward the scattered pose.
	//
	// Returns:
	//   - bool: true when scattered
	IsScattered() bool
}

// SceneState is the process-wide scatter flag. It has one writer (the input layer)
// and many readers. No subscription mechanism exists; consumers poll.
type SceneState interface {
	Signal

	// SetScattered stores an explicit value.
	//
	// Parameters:
	//   - scattered: the new flag value
	SetScattered(scattered bool)

	// ToggleScatter flips the flag and returns the new value.
	//
	// Returns:
	//   - bool: the value after flipping
	ToggleScatter() bool
}

// sceneState is the implementation of SceneState. The flag is atomic because the window
// callbacks and the tick loop run on different goroutines.
type sceneState struct {
	scattered atomic.Bool
}

var _ SceneState = &sceneState{}

// NewSceneState returns a SceneState initialised to assembled (false).
//
// Returns:
//   - SceneState: the new state
func NewSceneState() SceneState {
	return &sceneState{}
}

func (s *sceneState) IsScattered() bool {
	return s.scattered.Load()
}

func (s *sceneState) SetScattered(scattered bool) {
	s.scattered.Store(scattered)
}

func (s *sceneState) ToggleScatter() bool {
	for {
		old := s.scattered.Load()
		if s.scattered.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
