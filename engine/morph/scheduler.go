package morph

// DefaultRate is the approach rate of the morph factor, per second.
const DefaultRate float32 = 2.0

// Target maps the toggle value to the morph factor's destination.
//
// Parameters:
//   - scattered: the current toggle value
//
// Returns:
//   - float32: 1 when scattered, 0 otherwise
func Target(scattered bool) float32 {
	if scattered {
		return 1
	}
	return 0
}

// Step advances current toward target by exponential smoothing. The step factor
// rate*deltaTime is clamped to [0, 1], so long frames never overshoot and a zero
// delta leaves current unchanged.
//
// Parameters:
//   - current: the morph factor before this tick
//   - target: 0 or 1
//   - deltaTime: frame duration in seconds
//   - rate: approach rate per second
//
// Returns:
//   - float32: the morph factor after this tick
func Step(current, target, deltaTime, rate float32) float32 {
	k := rate * deltaTime
	if k > 1 {
		k = 1
	} else if !(k > 0) {
		return current
	}
	return current + (target-current)*k
}

// scheduler is the implementation of Scheduler.
type scheduler struct {
	current float32
	rate    float32
	signal  Signal
}

// Scheduler owns one morph factor and moves it toward the target read from a Signal.
// It is owned by a single element set and is not safe for concurrent use.
type Scheduler interface {
	// Advance reads the signal, steps the factor by deltaTime, and returns the new value.
	//
	// Parameters:
	//   - deltaTime: frame duration in seconds
	//
	// Returns:
	//   - float32: the updated morph factor in [0, 1]
	Advance(deltaTime float32) float32

	// Value returns the factor computed by the last Advance.
	//
	// Returns:
	//   - float32: the current morph factor
	Value() float32

	// Rate returns the approach rate per second.
	//
	// Returns:
	//   - float32: the rate
	Rate() float32
}

var _ Scheduler = &scheduler{}

// NewScheduler creates a Scheduler reading from signal, starting at 0 (assembled).
//
// Parameters:
//   - signal: the shared scatter toggle (read-only)
//   - options: functional options for rate and initial value
//
// Returns:
//   - Scheduler: the new scheduler
func NewScheduler(signal Signal, options ...SchedulerBuilderOption) Scheduler {
	s := &scheduler{
		rate:   DefaultRate,
		signal: signal,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scheduler) Advance(deltaTime float32) float32 {
	scattered := false
	if s.signal != nil {
		scattered = s.signal.IsScattered()
	}
	s.current = Step(s.current, Target(scattered), deltaTime, s.rate)
	return s.current
}

func (s *scheduler) Value() float32 {
	return s.current
}

func (s *scheduler) Rate() float32 {
	return s.rate
}
