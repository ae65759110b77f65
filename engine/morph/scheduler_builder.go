package morph

import "github.com/Carmen-Shannon/oxy-tree/common"

// SchedulerBuilderOption is a functional option for configuring a Scheduler.
type SchedulerBuilderOption func(*scheduler)

// WithRate sets the approach rate per second. Non-positive values keep the default.
//
// Parameters:
//   - rate: approach rate per second
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithRate(rate float32) SchedulerBuilderOption {
	return func(s *scheduler) {
		if rate > 0 {
			s.rate = rate
		}
	}
}

// WithInitial sets the starting morph factor, clamped to [0, 1].
//
// Parameters:
//   - value: the initial factor
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithInitial(value float32) SchedulerBuilderOption {
	return func(s *scheduler) {
		s.current = common.Clamp01(value)
	}
}
