package scene

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-frustum/common"
	"github.com/Carmen-Shannon/oxy-frustum/engine/camera"
	"github.com/Carmen-Shannon/oxy-frustum/engine/cull"
	"github.com/Carmen-Shannon/oxy-frustum/engine/profiler"
	"github.com/stretchr/testify/require"
)

func sphere(x, y, z, r float32) cull.Sphere {
	return cull.Sphere{Center: common.Vec3(x, y, z), Radius: r}
}

func newTestScene(options ...SceneBuilderOption) Scene {
	cam := camera.NewCamera(camera.WithPosition(0, 0, 10), camera.WithFar(50))
	options = append([]SceneBuilderOption{
		WithObjects(
			sphere(0, 0, 0, 1),     // 1: in view
			sphere(0, 0, 20, 1),    // 2: behind the camera
			sphere(100, 0, 0, 1),   // 3: far to the side
			sphere(2, 1, -5, 0.5),  // 4: in view
			sphere(0, 0, -45, 10),  // 5: straddles the far plane
			sphere(0, 30, 0, 0.25), // 6: above the view
		),
		WithCuller(cull.NewCuller(cull.WithChunkSize(2))),
	}, options...)
	return NewScene("test", cam, options...)
}

func TestNewSceneRequiresCamera(t *testing.T) {
	require.Panics(t, func() { NewScene("nil", nil) })
}

func TestSceneFrame(t *testing.T) {
	s := newTestScene()
	require.Equal(t, "test", s.Name())
	require.Equal(t, 6, s.Len())

	res, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, 6, res.Tested)
	require.Equal(t, []uint64{1, 4, 5}, res.Visible)
	require.Len(t, res.Uniform, 112)
	require.Equal(t, uint32(common.PlaneCount), binary.LittleEndian.Uint32(res.Uniform[96:100]))
}

func TestSceneFollowsCamera(t *testing.T) {
	s := newTestScene()

	s.Camera().SetPosition(100, 0, 10)
	s.Camera().SetTarget(100, 0, 0)

	res, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, []uint64{3}, res.Visible)
}

func TestSceneObjectLifecycle(t *testing.T) {
	s := newTestScene()

	id := s.Add(sphere(-1, -1, 0, 0.5))
	require.Equal(t, uint64(7), id)

	require.NoError(t, s.SetEnabled(1, false))
	require.NoError(t, s.SetBounds(6, sphere(0, 1, 0, 0.25)))
	s.Remove(4)
	s.Remove(999)

	res, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, 5, res.Tested)
	require.Equal(t, []uint64{5, 6, 7}, res.Visible)

	require.Error(t, s.SetEnabled(4, true))
	require.Error(t, s.SetBounds(42, sphere(0, 0, 0, 1)))
}

func TestSceneCullingDisabled(t *testing.T) {
	s := newTestScene(WithCullingDisabled(true))
	require.True(t, s.CullingDisabled())

	res, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3, 4, 5, 6}, res.Visible)
	require.Equal(t, make([]byte, 112), res.Uniform)

	s.SetCullingDisabled(false)
	res, err = s.Frame()
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 4, 5}, res.Visible)
}

func TestSceneTicksProfiler(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	p := profiler.NewProfiler(profiler.WithInterval(time.Nanosecond))
	s := newTestScene(WithProfiler(p))

	time.Sleep(time.Millisecond)
	_, err := s.Frame()
	require.NoError(t, err)

	stats := p.Stats()
	require.InDelta(t, 6, stats.TestedPerFrame, 1e-9)
	require.InDelta(t, 3, stats.VisiblePerFrame, 1e-9)
	require.Contains(t, buf.String(), "[Profiler]")
}
