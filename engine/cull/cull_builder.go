package cull

import "time"

// CullerBuilderOption configures a culler during NewCuller. Zero or negative values keep the default.
type CullerBuilderOption func(*cullerImpl)

// WithWorkers sets the maximum number of pool workers.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - CullerBuilderOption: a function that sets the worker count
func WithWorkers(n int) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.workers = n
	}
}

// WithChunkSize sets how many elements a single pool task tests.
// Inputs no larger than one chunk are culled on the calling goroutine.
//
// Parameters:
//   - n: elements per task
//
// Returns:
//   - CullerBuilderOption: a function that sets the chunk size
func WithChunkSize(n int) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.chunkSize = n
	}
}

// WithQueueSize sets the capacity of the pool's task queue.
func WithQueueSize(n int) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.queueSize = n
	}
}

// WithIdleTimeout sets how long an idle pool worker waits for a task before exiting.
func WithIdleTimeout(d time.Duration) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.idleTimeout = d
	}
}
