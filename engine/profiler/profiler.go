package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Stats is one reporting interval's summary.
type Stats struct {
	FPS        float64
	Morph      float32
	HeapMB     float64
	AllocRate  float64 // MB/s
	GCCount    uint32
	MaxPauseUs uint64
}

// String formats the stats the way they are logged.
func (s Stats) String() string {
	return fmt.Sprintf("FPS: %.2f | Morph: %.3f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs)",
		s.FPS, s.Morph, s.HeapMB, s.AllocRate, s.GCCount, s.MaxPauseUs)
}

// Profiler tracks frame rate, morph progress and memory churn, logging a summary once per interval.
// The per-tick compositor path is expected to allocate nothing, so a non-zero steady-state
// alloc rate points at a regression.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	logf           func(format string, args ...any)

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a Profiler. The interval defaults to one second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame. It logs a summary when the interval has elapsed.
//
// Parameters:
//   - morph: the current morph value of the scene
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick(morph float32) bool {
	p.frameCount++
	current := p.now()
	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	gcCount := p.memStats.NumGC

	var maxPauseUs uint64
	start := p.lastGCCount
	if gcCount-start > 256 {
		start = gcCount - 256
	}
	// PauseNs is a ring of the last 256 pauses
	for i := start; i < gcCount; i++ {
		maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	p.last = Stats{
		FPS:        float64(p.frameCount) / elapsed.Seconds(),
		Morph:      morph,
		HeapMB:     float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRate:  float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:    gcCount,
		MaxPauseUs: maxPauseUs,
	}
	p.logf("[Profiler] %s", p.last)

	p.frameCount = 0
	p.lastTime = current
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recently logged stats.
//
// Returns:
//   - Stats: the last summary, zero before the first report
func (p *Profiler) Last() Stats {
	return p.last
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogger replaces the log sink.
//
// Parameters:
//   - logf: a Printf-style function
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}
