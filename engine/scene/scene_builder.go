package scene

import (
	"github.com/Carmen-Shannon/oxy-frustum/engine/cull"
	"github.com/Carmen-Shannon/oxy-frustum/engine/profiler"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithObjects adds initial objects to the scene. IDs are assigned in argument order starting at 1.
//
// Parameters:
//   - bounds: the bounding spheres of the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(bounds ...cull.Sphere) SceneBuilderOption {
	return func(s *scene) {
		for _, b := range bounds {
			s.add(b)
		}
	}
}

// WithCuller sets the culler used by Frame. Sharing one culler between scenes shares its worker pool.
//
// Parameters:
//   - c: the culler to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCuller(c cull.Culler) SceneBuilderOption {
	return func(s *scene) {
		s.culler = c
	}
}

// WithProfiler attaches a profiler that is ticked with each frame's tested and visible counts.
//
// Parameters:
//   - p: the profiler to tick
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) SceneBuilderOption {
	return func(s *scene) {
		s.profiler = p
	}
}

// WithCullingDisabled disables frustum culling for the scene. By default culling is enabled.
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
