// package cull performs CPU visibility culling of large batches of points and bounding volumes against a set of
// frustum planes, fanning the work out over a reusable worker pool.
package cull

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-frustum/common"
)

var (
	// ErrNilPlanes is returned when a cull call is given no planes to test against.
	ErrNilPlanes = errors.New("cull: nil frustum planes")
	// ErrLengthMismatch is returned when the visibility output does not match the input length.
	ErrLengthMismatch = errors.New("cull: visibility slice length mismatch")
)

const (
	defaultChunkSize   = 4096
	defaultQueueSize   = 256
	defaultIdleTimeout = 1 * time.Second
)

// Sphere is a bounding sphere in world space.
type Sphere struct {
	Center common.Vector3
	Radius float32
}

// Box is an axis-aligned bounding box in world space with Min <= Max per axis.
type Box struct {
	Min common.Vector3
	Max common.Vector3
}

type cullerImpl struct {
	workers     int
	chunkSize   int
	queueSize   int
	idleTimeout time.Duration

	pool worker.DynamicWorkerPool
}

// Culler tests batches of primitives against frustum planes.
// Every Cull call writes one visibility flag per input element and returns the number of visible elements.
// Inputs larger than one chunk are split into chunks that run on the culler's worker pool; each chunk writes
// a disjoint range of the output, and the call returns only after every chunk has finished.
// The planes are only read, so one set of planes may be shared by concurrent calls.
type Culler interface {
	// Workers returns the configured maximum number of pool workers.
	Workers() int

	// ChunkSize returns the number of elements tested per pool task.
	ChunkSize() int

	// CullPoints tests each point for containment.
	//
	// Parameters:
	//   - planes: the frustum planes to test against
	//   - points: the points to test
	//   - visible: output flags, must have len(points) entries
	//
	// Returns:
	//   - int: the number of visible points
	//   - error: ErrNilPlanes or ErrLengthMismatch (wrapped) on invalid input
	CullPoints(planes *common.Planes, points []common.Vector3, visible []bool) (int, error)

	// CullSpheres tests each sphere for intersection with the frustum.
	//
	// Parameters:
	//   - planes: the frustum planes to test against
	//   - spheres: the spheres to test
	//   - visible: output flags, must have len(spheres) entries
	//
	// Returns:
	//   - int: the number of visible spheres
	//   - error: ErrNilPlanes or ErrLengthMismatch (wrapped) on invalid input
	CullSpheres(planes *common.Planes, spheres []Sphere, visible []bool) (int, error)

	// CullBoxes tests each axis-aligned box for intersection with the frustum.
	//
	// Parameters:
	//   - planes: the frustum planes to test against
	//   - boxes: the boxes to test
	//   - visible: output flags, must have len(boxes) entries
	//
	// Returns:
	//   - int: the number of visible boxes
	//   - error: ErrNilPlanes or ErrLengthMismatch (wrapped) on invalid input
	CullBoxes(planes *common.Planes, boxes []Box, visible []bool) (int, error)
}

var _ Culler = &cullerImpl{}

// NewCuller creates a Culler backed by a dynamic worker pool.
// By default the pool uses one worker per CPU minus one (at least one), chunks of 4096 elements, a task queue of
// 256 and a one second idle timeout after which unused workers exit.
//
// Parameters:
//   - options: functional options to configure the culler
//
// Returns:
//   - Culler: the newly created culler
func NewCuller(options ...CullerBuilderOption) Culler {
	c := &cullerImpl{}
	for _, option := range options {
		option(c)
	}
	c.workers = common.Coalesce(max(c.workers, 0), max(runtime.NumCPU()-1, 1))
	c.chunkSize = common.Coalesce(max(c.chunkSize, 0), defaultChunkSize)
	c.queueSize = common.Coalesce(max(c.queueSize, 0), defaultQueueSize)
	c.idleTimeout = common.Coalesce(max(c.idleTimeout, 0), defaultIdleTimeout)

	c.pool = worker.NewDynamicWorkerPool(c.workers, c.queueSize, c.idleTimeout)
	return c
}

func (c *cullerImpl) Workers() int {
	return c.workers
}

func (c *cullerImpl) ChunkSize() int {
	return c.chunkSize
}

func (c *cullerImpl) CullPoints(planes *common.Planes, points []common.Vector3, visible []bool) (int, error) {
	if err := validate("points", planes, len(points), len(visible)); err != nil {
		return 0, err
	}
	return c.run("points", len(points), visible, func(i int) bool {
		return planes.ContainsPoint(points[i])
	}), nil
}

func (c *cullerImpl) CullSpheres(planes *common.Planes, spheres []Sphere, visible []bool) (int, error) {
	if err := validate("spheres", planes, len(spheres), len(visible)); err != nil {
		return 0, err
	}
	return c.run("spheres", len(spheres), visible, func(i int) bool {
		return planes.ContainsSphere(spheres[i].Center, spheres[i].Radius)
	}), nil
}

func (c *cullerImpl) CullBoxes(planes *common.Planes, boxes []Box, visible []bool) (int, error) {
	if err := validate("boxes", planes, len(boxes), len(visible)); err != nil {
		return 0, err
	}
	return c.run("boxes", len(boxes), visible, func(i int) bool {
		return planes.ContainsBox(boxes[i].Min, boxes[i].Max)
	}), nil
}

// validate checks the shared preconditions of every cull call.
func validate(kind string, planes *common.Planes, n, visible int) error {
	if planes == nil {
		Logger().Warn("cull rejected", "kind", kind, "reason", "nil planes")
		return ErrNilPlanes
	}
	if n != visible {
		Logger().Warn("cull rejected", "kind", kind, "inputs", n, "visible", visible)
		return fmt.Errorf("%w: %d %s, %d visibility flags", ErrLengthMismatch, n, kind, visible)
	}
	return nil
}

// run evaluates test for every index in [0, n), writing visible[i] and returning the visible count.
// A single chunk runs on the calling goroutine; larger inputs are submitted to the pool one chunk per task and
// joined with a WaitGroup, since the pool's own Wait blocks until workers idle out.
func (c *cullerImpl) run(kind string, n int, visible []bool, test func(i int) bool) int {
	if n == 0 {
		return 0
	}

	chunks := (n + c.chunkSize - 1) / c.chunkSize
	if chunks == 1 {
		count := cullRange(0, n, visible, test)
		Logger().Debug("cull", "kind", kind, "tested", n, "visible", count, "chunks", 1)
		return count
	}

	counts := make([]int, chunks)
	var wg sync.WaitGroup
	for chunk := 0; chunk < chunks; chunk++ {
		start := chunk * c.chunkSize
		end := min(start+c.chunkSize, n)
		id := chunk

		wg.Add(1)
		c.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				counts[id] = cullRange(start, end, visible, test)
				return nil, nil
			},
		})
	}
	wg.Wait()

	total := 0
	for _, count := range counts {
		total += count
	}
	Logger().Debug("cull", "kind", kind, "tested", n, "visible", total, "chunks", chunks)
	return total
}

func cullRange(start, end int, visible []bool, test func(i int) bool) int {
	count := 0
	for i := start; i < end; i++ {
		v := test(i)
		visible[i] = v
		if v {
			count++
		}
	}
	return count
}
