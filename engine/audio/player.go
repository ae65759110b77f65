package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// player is the implementation of the Player interface.
type player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	bufferSize  time.Duration
	volume      float64
	muted       bool
	enabled     bool
	initialized bool

	mixer  *beep.Mixer
	output *effects.Volume
}

// Player plays the toggle chime through the default audio device.
// Every method is a no-op until Init succeeds, so a machine without audio still runs the scene.
type Player interface {
	// Init opens the audio device and starts the output mixer.
	//
	// Returns:
	//   - error: an error if the device could not be opened
	Init() error

	// Chime queues the toggle chime.
	//
	// Parameters:
	//   - scattered: the toggle value after the flip
	Chime(scattered bool)

	// SetMuted silences or restores the output without dropping queued sounds.
	//
	// Parameters:
	//   - muted: the new mute state
	SetMuted(muted bool)

	// ToggleMute flips the mute state.
	//
	// Returns:
	//   - bool: the state after flipping
	ToggleMute() bool

	// Muted reports the current mute state.
	//
	// Returns:
	//   - bool: true when muted
	Muted() bool

	// Active returns the number of sounds still playing.
	//
	// Returns:
	//   - int: the mixer length
	Active() int

	// Close stops everything that is playing.
	Close()
}

var _ Player = &player{}

// NewPlayer creates a Player. The device is not touched until Init.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the player
func NewPlayer(options ...PlayerBuilderOption) Player {
	p := &player{
		rate:       SampleRate,
		bufferSize: 100 * time.Millisecond,
		volume:     1,
		enabled:    true,
		mixer:      &beep.Mixer{},
	}
	for _, opt := range options {
		opt(p)
	}
	p.output = &effects.Volume{Streamer: p.mixer, Base: 2}
	p.applyVolume()
	return p
}

func (p *player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(p.bufferSize)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(p.output)
	p.initialized = true
	log.Printf("[Audio] speaker running at %d Hz", p.rate)
	return nil
}

func (p *player) Chime(scattered bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewChime(p.rate, scattered))
	speaker.Unlock()
}

func (p *player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.lockedApply()
}

func (p *player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	p.lockedApply()
	return p.muted
}

func (p *player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return p.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

func (p *player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// lockedApply updates the output volume, holding the speaker lock once the device is running.
func (p *player) lockedApply() {
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.applyVolume()
}

// applyVolume maps the linear volume onto the base-2 exponent effects.Volume expects.
func (p *player) applyVolume() {
	p.output.Silent = p.muted || p.volume <= 0
	if p.volume > 0 {
		p.output.Volume = math.Log2(p.volume)
	}
}
