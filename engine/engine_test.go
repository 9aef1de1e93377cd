package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-frustum/common"
	"github.com/Carmen-Shannon/oxy-frustum/engine/camera"
	"github.com/Carmen-Shannon/oxy-frustum/engine/cull"
	"github.com/Carmen-Shannon/oxy-frustum/engine/scene"
	"github.com/stretchr/testify/require"
)

func testScene(name string, x float32) scene.Scene {
	return scene.NewScene(name, camera.NewCamera(),
		scene.WithObjects(cull.Sphere{Center: common.Vec3(x, 0, 0), Radius: 0.5}),
	)
}

func TestEngineRunsScenesInKeyOrder(t *testing.T) {
	var order []int
	visible := map[int]int{}

	var e Engine
	e = NewEngine(
		WithTickRate(1000),
		WithScene(2, testScene("far", 50)),
		WithScene(1, testScene("near", 0)),
		WithFrameCallback(func(key int, res scene.FrameResult) {
			order = append(order, key)
			visible[key] = len(res.Visible)
			if len(order) == 4 {
				e.Quit()
			}
		}),
	)

	require.NoError(t, e.Run(context.Background()))
	require.Equal(t, []int{1, 2, 1, 2}, order)
	require.Equal(t, 1, visible[1])
	require.Equal(t, 0, visible[2])
}

func TestEngineTickCallback(t *testing.T) {
	e := NewEngine(WithTickRate(500))

	ticks := 0
	e.SetTickCallback(func(dt float32) {
		ticks++
		require.Greater(t, dt, float32(0))
		if ticks == 3 {
			e.Quit()
		}
	})
	require.NoError(t, e.Run(context.Background()))
	require.Equal(t, 3, ticks)

	// Quit is idempotent.
	e.Quit()
}

func TestEngineStopsOnContext(t *testing.T) {
	e := NewEngine(WithTickRate(100))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop after context cancellation")
	}
}

func TestEngineSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(1))

	ticks := 0
	e.SetTickCallback(func(float32) {
		ticks++
		e.Quit()
	})
	e.SetTickRate(1000)

	start := time.Now()
	require.NoError(t, e.Run(context.Background()))
	require.Equal(t, 1, ticks)
	require.Less(t, time.Since(start), 900*time.Millisecond)
}

type failingScene struct {
	scene.Scene
}

func (failingScene) Frame() (scene.FrameResult, error) {
	return scene.FrameResult{}, errors.New("boom")
}

func TestEngineReturnsSceneError(t *testing.T) {
	e := NewEngine(WithTickRate(1000), WithScene(7, failingScene{}))

	err := e.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "scene 7")
	require.Contains(t, err.Error(), "boom")
}

func TestEngineSceneRegistry(t *testing.T) {
	e := NewEngine()
	require.Equal(t, time.Second/60, e.TickRate())

	s := testScene("a", 0)
	e.AddScene(3, s)
	require.Equal(t, s, e.Scene(3))
	require.Len(t, e.Scenes(), 1)

	e.RemoveScene(3)
	require.Nil(t, e.Scene(3))

	e.SetTickRate(-1)
	require.Equal(t, time.Second/60, e.TickRate())
	e.SetTickRate(250)
	require.Equal(t, 4*time.Millisecond, e.TickRate())
}
