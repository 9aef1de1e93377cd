package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-frustum/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position common.Vector3
	target   common.Vector3
	up       common.Vector3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           common.Matrix
	projectionMatrix     common.Matrix
	viewProjectionMatrix common.Matrix

	// planes is re-extracted in place on every matrix update.
	planes common.Planes
}

// Camera defines the interface for a perspective camera.
// The camera holds its placement and perspective settings, and keeps the view, projection and view-projection
// matrices together with the six frustum planes derived from them current after every change.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vector3: the eye position
	Position() common.Vector3

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - common.Vector3: the look-at point
	Target() common.Vector3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - common.Vector3: the up vector
	Up() common.Vector3

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns a copy of the current view matrix.
	//
	// Returns:
	//   - common.Matrix: the view matrix
	ViewMatrix() common.Matrix

	// ProjectionMatrix returns a copy of the current projection matrix.
	//
	// Returns:
	//   - common.Matrix: the projection matrix
	ProjectionMatrix() common.Matrix

	// ViewProjectionMatrix returns a copy of the current combined view-projection matrix.
	//
	// Returns:
	//   - common.Matrix: the view-projection matrix
	ViewProjectionMatrix() common.Matrix

	// Frustum returns a copy of the frustum planes extracted from the current view-projection matrix,
	// ordered near, far, left, right, top, bottom.
	//
	// Returns:
	//   - common.Planes: the six frustum planes
	Frustum() common.Planes

	// IsVisible reports whether a world-space point lies inside the camera frustum.
	//
	// Parameters:
	//   - point: the world-space point
	//
	// Returns:
	//   - bool: true if the point is inside or on the boundary of the frustum
	IsVisible(point common.Vector3) bool

	// IsSphereVisible reports whether any part of a world-space sphere may be inside the camera frustum.
	//
	// Parameters:
	//   - center: the sphere center
	//   - radius: the sphere radius
	//
	// Returns:
	//   - bool: true if the sphere is not entirely outside one frustum plane
	IsSphereVisible(center common.Vector3, radius float32) bool

	// Update recomputes the matrices and re-extracts the frustum planes.
	// Setters already do this; Update is for callers that want an explicit per-frame refresh.
	Update()

	// SetPosition sets the eye position and recomputes matrices.
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at point and recomputes matrices.
	SetTarget(x, y, z float32)

	// SetUp sets the up vector and recomputes matrices.
	SetUp(x, y, z float32)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings: a 45 degree field of view, square aspect,
// near 0.1, far 100, placed at (0, 0, 5) looking at the origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera with current matrices and frustum planes
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: common.Vec3(0, 0, 5),
		up:       common.Vec3(0, 1, 0),
		fov:      45.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() common.Vector3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Target() common.Vector3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() common.Vector3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() common.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Planes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.planes
}

func (c *cameraImpl) IsVisible(point common.Vector3) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.planes.ContainsPoint(point)
}

func (c *cameraImpl) IsSphereVisible(center common.Vector3, radius float32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.planes.ContainsSphere(center, radius)
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = common.Vec3(x, y, z)
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = common.Vec3(x, y, z)
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = common.Vec3(x, y, z)
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection and view-projection matrices, then extracts the frustum planes
// into the camera's existing plane storage.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.LookAt(c.viewMatrix[:], c.position, c.target, c.up)
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
	common.ExtractPlanes(&c.viewProjectionMatrix, &c.planes)
}
