package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-frustum/engine/scene"
)

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	tickRate        time.Duration
	tickRateChannel chan time.Duration // dynamic tick rate updates while running

	quitChannel chan struct{}
	quitOnce    sync.Once // ensures quitChannel is only closed once

	tickCallback  func(deltaTime float32)
	frameCallback func(key int, result scene.FrameResult)

	scenes map[int]scene.Scene
}

// Engine drives a fixed-rate headless frame loop. On every tick it invokes the tick callback, then culls every
// registered scene in ascending key order and hands each result to the frame callback.
type Engine interface {
	// SetTickRate updates the loop rate. Takes effect on the next tick when running.
	// Non-positive values reset to 60 ticks per second.
	SetTickRate(fps float64)

	// TickRate returns the interval between ticks.
	TickRate() time.Duration

	// SetTickCallback sets the function called at the start of each tick with the seconds since the previous tick.
	SetTickCallback(callback func(deltaTime float32))

	// SetFrameCallback sets the function receiving each scene's frame result.
	// The result's Visible slice is only valid for the duration of the call.
	SetFrameCallback(callback func(key int, result scene.FrameResult))

	// AddScene registers a scene under key, replacing any scene already there.
	AddScene(key int, s scene.Scene)

	// RemoveScene unregisters the scene under key.
	RemoveScene(key int)

	// Scene returns the scene under key, or nil.
	Scene(key int) scene.Scene

	// Scenes returns a copy of the registered scenes.
	Scenes() map[int]scene.Scene

	// Run blocks running the frame loop until ctx is done, Quit is called, or a scene fails to cull.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: nil on cancellation or Quit, otherwise the scene error
	Run(ctx context.Context) error

	// Quit stops a running loop. Safe to call more than once.
	Quit()
}

// NewEngine creates a new Engine ticking at 60 frames per second.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.Mutex{},
		tickRate:        time.Second / 60,
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Run(ctx context.Context) error {
	e.mu.Lock()
	rate := e.tickRate
	e.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		// Stop requests win over a tick that is already due.
		select {
		case <-ctx.Done():
			return nil
		case <-e.quitChannel:
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case <-e.quitChannel:
			return nil
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if err := e.tick(dt); err != nil {
				return err
			}
		}
	}
}

// tick runs one frame over a snapshot of the registered scenes.
func (e *engine) tick(dt float32) error {
	e.mu.Lock()
	tickCallback, frameCallback := e.tickCallback, e.frameCallback
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	scenes := make([]scene.Scene, len(keys))
	for i, k := range keys {
		scenes[i] = e.scenes[k]
	}
	e.mu.Unlock()

	if tickCallback != nil {
		tickCallback(dt)
	}

	for i, s := range scenes {
		res, err := s.Frame()
		if err != nil {
			return fmt.Errorf("engine: scene %d: %w", keys[i], err)
		}
		if frameCallback != nil {
			frameCallback(keys[i], res)
		}
	}
	return nil
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.mu.Lock()
	e.tickRate = newRate
	e.mu.Unlock()

	// Replace any pending update so the latest rate wins.
	select {
	case <-e.tickRateChannel:
	default:
	}
	select {
	case e.tickRateChannel <- newRate:
	default:
	}
}

func (e *engine) TickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tickRate
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetFrameCallback(callback func(key int, result scene.FrameResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frameCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
