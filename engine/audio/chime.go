package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every streamer in this package produces.
const SampleRate = beep.SampleRate(44100)

// bell partial ratios and weights, roughly a tubular bell
var (
	partialRatios  = [...]float64{1, 2.76, 5.4}
	partialWeights = [...]float64{0.6, 0.3, 0.1}
)

// note frequencies in Hz
const (
	noteE5  = 659.26
	noteGs5 = 830.61
	noteB5  = 987.77
	noteE6  = 1318.51
)

// bell is one struck note: a sum of sine partials under an exponential decay.
type bell struct {
	freq      float64
	amplitude float64
	decay     float64
	rate      beep.SampleRate
	position  int
	length    int
}

// NewBell creates a single bell note.
//
// Parameters:
//   - rate: the output sample rate
//   - freq: the fundamental in Hz
//   - amplitude: the peak level, clamped to [0, 1]
//   - duration: how long the note rings
//
// Returns:
//   - beep.Streamer: a finite streamer
func NewBell(rate beep.SampleRate, freq, amplitude float64, duration time.Duration) beep.Streamer {
	length := rate.N(duration)
	return &bell{
		freq:      freq,
		amplitude: min(max(amplitude, 0), 1),
		// reaches about -60 dB by the end of the note
		decay:    6.9 / max(float64(length), 1),
		rate:     rate,
		length:   length,
	}
}

func (b *bell) Stream(samples [][2]float64) (n int, ok bool) {
	if b.position >= b.length {
		return 0, false
	}
	for i := range samples {
		if b.position >= b.length {
			return i, true
		}
		t := float64(b.position) / float64(b.rate)
		var v float64
		for p, ratio := range partialRatios {
			// higher partials die faster
			env := math.Exp(-b.decay * float64(b.position) * ratio)
			v += partialWeights[p] * env * math.Sin(2*math.Pi*b.freq*ratio*t)
		}
		// 5 ms attack to avoid a click
		if attack := b.rate.N(5 * time.Millisecond); b.position < attack {
			v *= float64(b.position) / float64(attack)
		}
		v *= b.amplitude
		samples[i][0] = v
		samples[i][1] = v
		b.position++
	}
	return len(samples), true
}

func (b *bell) Err() error { return nil }

// NewChime creates the arpeggio played on a toggle: rising when the tree scatters, falling when it
// assembles. The result is finite and every sample stays within [-1, 1].
//
// Parameters:
//   - rate: the output sample rate
//   - scattered: the toggle value after the flip
//
// Returns:
//   - beep.Streamer: the mixed chime
func NewChime(rate beep.SampleRate, scattered bool) beep.Streamer {
	notes := []float64{noteE6, noteB5, noteGs5, noteE5}
	if scattered {
		notes = []float64{noteE5, noteGs5, noteB5, noteE6}
	}

	const (
		spacing   = 90 * time.Millisecond
		ring      = 1200 * time.Millisecond
		amplitude = 0.22
	)

	voices := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		delay := rate.N(time.Duration(i) * spacing)
		voices[i] = beep.Seq(beep.Silence(delay), NewBell(rate, freq, amplitude, ring))
	}
	return beep.Mix(voices...)
}

// ChimeLength returns the number of samples NewChime produces.
//
// Parameters:
//   - rate: the output sample rate
//
// Returns:
//   - int: the sample count
func ChimeLength(rate beep.SampleRate) int {
	return rate.N(3*90*time.Millisecond) + rate.N(1200*time.Millisecond)
}
