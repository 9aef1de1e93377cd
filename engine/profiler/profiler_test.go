package profiler

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerTickInterval(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(withClock(clock.now))

	for i := 0; i < 9; i++ {
		clock.advance(100 * time.Millisecond)
		require.False(t, p.Tick(100, 25), "tick %d", i)
	}
	require.Equal(t, Stats{}, p.Stats())

	clock.advance(100 * time.Millisecond)
	require.True(t, p.Tick(100, 25))

	s := p.Stats()
	require.InDelta(t, 10, s.FPS, 1e-9)
	require.InDelta(t, 100, s.TestedPerFrame, 1e-9)
	require.InDelta(t, 25, s.VisiblePerFrame, 1e-9)
	require.InDelta(t, 0.25, s.VisibleRatio, 1e-9)
	require.Contains(t, buf.String(), "[Profiler] FPS: 10.00 | Tested: 100/frame | Visible: 25/frame (25.0%)")
}

func TestProfilerResetsAfterReport(t *testing.T) {
	log.SetOutput(&bytes.Buffer{})
	defer log.SetOutput(os.Stderr)

	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithInterval(time.Second), withClock(clock.now))

	clock.advance(time.Second)
	require.True(t, p.Tick(10, 10))

	clock.advance(500 * time.Millisecond)
	require.False(t, p.Tick(0, 0))
	clock.advance(500 * time.Millisecond)
	require.True(t, p.Tick(0, 0))

	s := p.Stats()
	require.InDelta(t, 2, s.FPS, 1e-9)
	require.Equal(t, float64(0), s.VisibleRatio)
	require.Equal(t, float64(0), s.TestedPerFrame)
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(-time.Second))
	require.Equal(t, time.Second, p.updateInterval)

	p = NewProfiler(WithInterval(250 * time.Millisecond))
	require.Equal(t, 250*time.Millisecond, p.updateInterval)
}
