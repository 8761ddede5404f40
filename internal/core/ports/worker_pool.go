package ports

import "context"

// PoolOptions configure pool acquisition.
type PoolOptions struct {
	// Workers is the number of workers; zero means runtime.NumCPU.
	Workers int
}

// PoolRegistry hands out shared worker pools keyed by configuration identity.
// Orchestrator instances with equal keys converge on one pool; the pool is
// torn down when the last handle is released.
//
//go:generate mockgen -source=worker_pool.go -destination=mocks/mock_worker_pool.go -package=mocks
type PoolRegistry interface {
	// AcquireShared returns a reference-counted handle to the pool for the
	// given configuration key, creating the pool on first acquisition.
	AcquireShared(configKey string, opts PoolOptions) (PoolHandle, error)
}

// PoolHandle is one reference to a shared worker pool. Invocations are
// independent and side-effect-isolated; the pool tolerates concurrent
// submissions from overlapping builds.
type PoolHandle interface {
	// Invoke runs the named operation on an idle worker and returns its
	// result. A panic inside the operation is reported as an error, not
	// propagated.
	Invoke(ctx context.Context, op string, args any) (any, error)

	// Release drops this reference. Releasing the last reference drains the
	// pool and waits for the workers to exit. Releasing an already-released
	// handle is an error.
	Release() error
}
