package engine

import "log"

// AutoToggle returns a tick callback that flips the primary tree every period seconds, for
// unattended displays. Register it with SetTickCallback.
//
// Parameters:
//   - e: the engine to toggle
//   - period: seconds between toggles, values <= 0 never toggle
//
// Returns:
//   - func(deltaTime float32): the tick callback
func AutoToggle(e Engine, period float32) func(deltaTime float32) {
	var acc float32
	return func(deltaTime float32) {
		if period <= 0 {
			return
		}
		acc += deltaTime
		for acc >= period {
			acc -= period
			log.Printf("[Engine] auto toggle, scattered=%v", e.Toggle())
		}
	}
}
