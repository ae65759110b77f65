package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// PlayerBuilderOption is a functional option for configuring a Player.
type PlayerBuilderOption func(*player)

// WithSampleRate overrides the output sample rate.
//
// Parameters:
//   - rate: the sample rate
//
// Returns:
//   - PlayerBuilderOption: a function that applies the rate to the player
func WithSampleRate(rate beep.SampleRate) PlayerBuilderOption {
	return func(p *player) {
		if rate > 0 {
			p.rate = rate
		}
	}
}

// WithBufferSize sets the speaker buffer length. Smaller buffers lower latency at the cost of underruns.
func WithBufferSize(d time.Duration) PlayerBuilderOption {
	return func(p *player) {
		if d > 0 {
			p.bufferSize = d
		}
	}
}

// WithVolume sets the linear output volume in [0, 1].
//
// Parameters:
//   - volume: the volume, clamped
//
// Returns:
//   - PlayerBuilderOption: a function that applies the volume to the player
func WithVolume(volume float64) PlayerBuilderOption {
	return func(p *player) {
		p.volume = min(max(volume, 0), 1)
	}
}

// WithEnabled turns the player off entirely. A disabled player never opens the device.
func WithEnabled(enabled bool) PlayerBuilderOption {
	return func(p *player) {
		p.enabled = enabled
	}
}

// WithMuted sets the starting mute state.
func WithMuted(muted bool) PlayerBuilderOption {
	return func(p *player) {
		p.muted = muted
	}
}
