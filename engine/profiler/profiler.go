package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is a snapshot of one profiling interval.
type Stats struct {
	// FPS is the number of ticks per second over the interval.
	FPS float64
	// TestedPerFrame is the average number of primitives tested against the frustum per tick.
	TestedPerFrame float64
	// VisiblePerFrame is the average number of primitives that passed the frustum test per tick.
	VisiblePerFrame float64
	// VisibleRatio is visible over tested for the interval, or 0 when nothing was tested.
	VisibleRatio float64
	// HeapMB is the live heap at the end of the interval.
	HeapMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
}

// Profiler tracks frame rate, culling throughput and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	tested         int
	visible        int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	last           Stats
	now            func() time.Time
}

// ProfilerOption configures a Profiler during NewProfiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged. Non-positive values keep the one second default.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerOption: a function that sets the interval
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// withClock replaces the time source, for tests.
func withClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with the frame's culling totals.
// Logs statistics when the update interval has elapsed: FPS, tested and visible primitives per frame,
// visible ratio, heap usage and GC count.
//
// Parameters:
//   - tested: primitives tested against the frustum this frame
//   - visible: primitives that passed the test this frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(tested, visible int) bool {
	p.frameCount++
	p.tested += tested
	p.visible += visible

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)

	frames := float64(p.frameCount)
	s := Stats{
		FPS:             frames / elapsed.Seconds(),
		TestedPerFrame:  float64(p.tested) / frames,
		VisiblePerFrame: float64(p.visible) / frames,
		HeapMB:          float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:         p.memStats.NumGC,
	}
	if p.tested > 0 {
		s.VisibleRatio = float64(p.visible) / float64(p.tested)
	}

	log.Printf("[Profiler] FPS: %.2f | Tested: %.0f/frame | Visible: %.0f/frame (%.1f%%) | Heap: %.2f MB | GC: %d",
		s.FPS, s.TestedPerFrame, s.VisiblePerFrame, s.VisibleRatio*100, s.HeapMB, s.GCCount)

	p.last = s
	p.frameCount = 0
	p.tested = 0
	p.visible = 0
	p.lastTime = currentTime
	return true
}

// Stats returns the snapshot logged by the most recent reporting Tick.
//
// Returns:
//   - Stats: the last interval's statistics, zero before the first report
func (p *Profiler) Stats() Stats {
	return p.last
}
