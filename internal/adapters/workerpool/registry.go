// Package workerpool implements the shared packaging worker pool. Pools are
// keyed by configuration, so concurrent builds of the same project share one
// set of workers.
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/stitch/internal/core/ports"
)

// Op is an operation workers can execute.
type Op func(ctx context.Context, args any) (any, error)

var _ ports.PoolRegistry = (*Registry)(nil)

// Registry implements ports.PoolRegistry. It owns the operation table and
// the live pools.
type Registry struct {
	mu    sync.Mutex
	ops   map[string]Op
	pools map[string]*pool
}

// NewRegistry creates an empty pool registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:   make(map[string]Op),
		pools: make(map[string]*pool),
	}
}

// RegisterOp makes an operation invokable by name on every pool from this
// registry. Registration is expected to happen at wiring time, before any
// pool runs.
func (r *Registry) RegisterOp(name string, op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = op
}

// AcquireShared returns a handle on the pool for the given configuration
// key, starting the pool if this is the first acquisition. Each handle must
// be released exactly once; the pool drains and stops when the last handle
// is released.
func (r *Registry) AcquireShared(configKey string, opts ports.PoolOptions) (ports.PoolHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pools[configKey]
	if !ok {
		workers := opts.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		p = newPool(r, configKey, workers)
		r.pools[configKey] = p
	}
	p.refs++

	return &handle{pool: p}, nil
}

// op looks up a registered operation.
func (r *Registry) op(name string) (Op, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[name]
	return op, ok
}

// drop removes a drained pool. Called by the pool itself under r.mu.
func (r *Registry) drop(configKey string) {
	delete(r.pools, configKey)
}
