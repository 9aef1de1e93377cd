package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-frustum/engine/camera"
	"github.com/Carmen-Shannon/oxy-frustum/engine/cull"
	"github.com/Carmen-Shannon/oxy-frustum/engine/frustum_uniform"
	"github.com/Carmen-Shannon/oxy-frustum/engine/profiler"
)

// FrameResult is the outcome of culling one frame.
type FrameResult struct {
	// Visible holds the IDs of enabled objects that passed the frustum test, in ascending order.
	// The slice is reused by the next Frame call; copy it to retain it.
	Visible []uint64
	// Tested is the number of enabled objects tested this frame.
	Tested int
	// Uniform is the frustum uniform for GPU-side culling, serialized for upload.
	// PlaneCount is zero when culling is disabled.
	Uniform []byte
}

// Scene is a flat set of bounded objects viewed through a camera.
// Each Frame refreshes the camera, culls every enabled object's bounding sphere against the camera frustum
// and produces the GPU frustum uniform for the same planes.
type Scene interface {
	// Name returns the scene name.
	Name() string

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Add registers an object with the given world-space bounding sphere.
	//
	// Parameters:
	//   - bounds: the object's bounding sphere
	//
	// Returns:
	//   - uint64: the new object's ID, never 0
	Add(bounds cull.Sphere) uint64

	// Remove unregisters an object. Unknown IDs are ignored.
	Remove(id uint64)

	// SetBounds replaces an object's bounding sphere.
	//
	// Returns:
	//   - error: if no object with id exists
	SetBounds(id uint64, bounds cull.Sphere) error

	// SetEnabled includes or excludes an object from culling. Disabled objects are never visible.
	//
	// Returns:
	//   - error: if no object with id exists
	SetEnabled(id uint64, enabled bool) error

	// Len returns the number of registered objects.
	Len() int

	// CullingDisabled reports whether frustum culling is bypassed.
	CullingDisabled() bool

	// SetCullingDisabled bypasses frustum culling. While disabled every enabled object is visible.
	SetCullingDisabled(disabled bool)

	// Frame culls the scene for the current camera state.
	//
	// Returns:
	//   - FrameResult: the visible objects and the frustum uniform
	//   - error: if culling failed
	Frame() (FrameResult, error)
}

type object struct {
	bounds  cull.Sphere
	enabled bool
}

type scene struct {
	mu *sync.Mutex

	name string
	cam  camera.Camera

	registry map[uint64]*object
	nextID   uint64

	culler          cull.Culler
	profiler        *profiler.Profiler
	cullingDisabled bool

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	idPool      []uint64
	spherePool  []cull.Sphere
	visiblePool []bool
	resultPool  []uint64
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene viewed through cam. cam is required and NewScene panics if it is nil.
// Unless overridden, the scene creates its own Culler with default settings.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to cull against (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:       &sync.Mutex{},
		name:     name,
		cam:      cam,
		registry: make(map[uint64]*object),
		nextID:   1,
	}
	for _, option := range options {
		option(s)
	}
	if s.culler == nil {
		s.culler = cull.NewCuller()
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Add(bounds cull.Sphere) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(bounds)
}

// add registers an object. Caller must hold the mutex.
func (s *scene) add(bounds cull.Sphere) uint64 {
	id := s.nextID
	s.nextID++
	s.registry[id] = &object{bounds: bounds, enabled: true}
	return id
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) SetBounds(id uint64, bounds cull.Sphere) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.registry[id]
	if !ok {
		return fmt.Errorf("scene %s: object %d not found", s.name, id)
	}
	obj.bounds = bounds
	return nil
}

func (s *scene) SetEnabled(id uint64, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.registry[id]
	if !ok {
		return fmt.Errorf("scene %s: object %d not found", s.name, id)
	}
	obj.enabled = enabled
	return nil
}

func (s *scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registry)
}

func (s *scene) CullingDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Frame() (FrameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cam.Update()
	planes := s.cam.Frustum()

	s.idPool = s.idPool[:0]
	for id, obj := range s.registry {
		if obj.enabled {
			s.idPool = append(s.idPool, id)
		}
	}
	slices.Sort(s.idPool)

	s.spherePool = s.spherePool[:0]
	for _, id := range s.idPool {
		s.spherePool = append(s.spherePool, s.registry[id].bounds)
	}
	s.visiblePool = slices.Grow(s.visiblePool[:0], len(s.idPool))[:len(s.idPool)]

	var uniform frustum_uniform.GPUFrustumUniform
	s.resultPool = s.resultPool[:0]
	if s.cullingDisabled {
		s.resultPool = append(s.resultPool, s.idPool...)
	} else {
		if _, err := s.culler.CullSpheres(&planes, s.spherePool, s.visiblePool); err != nil {
			return FrameResult{}, fmt.Errorf("scene %s: failed to cull frame: %w", s.name, err)
		}
		for i, id := range s.idPool {
			if s.visiblePool[i] {
				s.resultPool = append(s.resultPool, id)
			}
		}
		uniform = frustum_uniform.FromPlanes(&planes)
	}

	if s.profiler != nil {
		s.profiler.Tick(len(s.idPool), len(s.resultPool))
	}

	return FrameResult{
		Visible: s.resultPool,
		Tested:  len(s.idPool),
		Uniform: uniform.Marshal(),
	}, nil
}
