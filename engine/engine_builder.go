package engine

import "github.com/Carmen-Shannon/oxy-frustum/engine/scene"

// EngineBuilderOption configures an engine during NewEngine.
type EngineBuilderOption func(*engine)

// WithTickRate sets the frame loop rate in ticks per second. Non-positive values keep 60.
//
// Parameters:
//   - fps: ticks per second
//
// Returns:
//   - EngineBuilderOption: a function that sets the tick rate
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = tickInterval(fps)
	}
}

// WithScene registers a scene under key.
//
// Parameters:
//   - key: the scene key; scenes are culled in ascending key order
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: a function that registers the scene
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithFrameCallback sets the function receiving each scene's frame result.
func WithFrameCallback(callback func(key int, result scene.FrameResult)) EngineBuilderOption {
	return func(e *engine) {
		e.frameCallback = callback
	}
}
