package workerpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const jobChannelBuffer = 32

type job struct {
	ctx   context.Context
	op    string
	args  any
	reply chan jobResult
}

type jobResult struct {
	value any
	err   error
}

// pool is a fixed set of worker goroutines consuming from one job channel.
type pool struct {
	registry *Registry
	key      string
	jobs     chan job
	wg       sync.WaitGroup
	refs     int
}

func newPool(registry *Registry, key string, workers int) *pool {
	p := &pool{
		registry: registry,
		key:      key,
		jobs:     make(chan job, jobChannelBuffer),
	}
	for range workers {
		p.wg.Add(1)
		go p.worker(uuid.NewString())
	}
	return p
}

// worker executes jobs until the job channel is closed. A panicking
// operation fails its own job only; the worker keeps serving.
func (p *pool) worker(workerID string) {
	defer p.wg.Done()

	for j := range p.jobs {
		j.reply <- p.run(workerID, j)
	}
}

func (p *pool) run(workerID string, j job) (result jobResult) {
	defer func() {
		if r := recover(); r != nil {
			err := zerr.With(domain.ErrWorkerPanic, "panic", fmt.Sprintf("%v", r))
			result = jobResult{err: zerr.With(err, "worker", workerID)}
		}
	}()

	if err := j.ctx.Err(); err != nil {
		return jobResult{err: err}
	}

	op, ok := p.registry.op(j.op)
	if !ok {
		return jobResult{err: zerr.With(domain.ErrUnknownOperation, "op", j.op)}
	}

	value, err := op(j.ctx, j.args)
	return jobResult{value: value, err: err}
}

// release drops one reference. The last release closes the job channel and
// waits for the workers to drain everything already queued.
func (p *pool) release() {
	p.registry.mu.Lock()
	p.refs--
	last := p.refs == 0
	if last {
		p.registry.drop(p.key)
	}
	p.registry.mu.Unlock()

	if last {
		close(p.jobs)
		p.wg.Wait()
	}
}

// handle is one acquisition of a shared pool.
type handle struct {
	pool *pool

	mu       sync.Mutex
	inflight sync.WaitGroup
	released bool
}

var _ ports.PoolHandle = (*handle)(nil)

// Invoke runs a registered operation on the pool and waits for its result.
func (h *handle) Invoke(ctx context.Context, op string, args any) (any, error) {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return nil, domain.ErrPoolReleased
	}
	h.inflight.Add(1)
	h.mu.Unlock()
	defer h.inflight.Done()

	j := job{ctx: ctx, op: op, args: args, reply: make(chan jobResult, 1)}

	select {
	case h.pool.jobs <- j:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-j.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns the handle's reference to the pool. It blocks until the
// handle's own in-flight invocations finish, then lets the pool drain if
// this was the last reference. Releasing twice is an error.
func (h *handle) Release() error {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return domain.ErrPoolReleased
	}
	h.released = true
	h.mu.Unlock()

	h.inflight.Wait()
	h.pool.release()
	return nil
}
