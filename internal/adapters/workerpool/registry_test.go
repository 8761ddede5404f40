package workerpool_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/workerpool"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

func acquire(t *testing.T, r *workerpool.Registry, key string) ports.PoolHandle {
	t.Helper()
	h, err := r.AcquireShared(key, ports.PoolOptions{Workers: 2})
	require.NoError(t, err)
	return h
}

func TestRegistry_InvokeRoundTrip(t *testing.T) {
	r := workerpool.NewRegistry()
	r.RegisterOp("double", func(_ context.Context, args any) (any, error) {
		return args.(int) * 2, nil
	})

	h := acquire(t, r, "cfg-a")
	defer func() { _ = h.Release() }()

	got, err := h.Invoke(context.Background(), "double", 21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestRegistry_UnknownOperation(t *testing.T) {
	r := workerpool.NewRegistry()
	h := acquire(t, r, "cfg-a")
	defer func() { _ = h.Release() }()

	_, err := h.Invoke(context.Background(), "nope", nil)
	require.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestRegistry_SharedAcquisition(t *testing.T) {
	r := workerpool.NewRegistry()

	var mu sync.Mutex
	seen := map[string]bool{}
	r.RegisterOp("mark", func(_ context.Context, args any) (any, error) {
		mu.Lock()
		defer mu.Unlock()
		seen[args.(string)] = true
		return nil, nil
	})

	h1 := acquire(t, r, "cfg-a")
	h2 := acquire(t, r, "cfg-a")

	_, err := h1.Invoke(context.Background(), "mark", "one")
	require.NoError(t, err)
	_, err = h2.Invoke(context.Background(), "mark", "two")
	require.NoError(t, err)

	// Releasing the first handle leaves the pool alive for the second.
	require.NoError(t, h1.Release())
	_, err = h2.Invoke(context.Background(), "mark", "three")
	require.NoError(t, err)
	require.NoError(t, h2.Release())

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 3)
}

func TestHandle_ReleaseTwice(t *testing.T) {
	r := workerpool.NewRegistry()
	h := acquire(t, r, "cfg-a")

	require.NoError(t, h.Release())
	require.ErrorIs(t, h.Release(), domain.ErrPoolReleased)
}

func TestHandle_InvokeAfterRelease(t *testing.T) {
	r := workerpool.NewRegistry()
	h := acquire(t, r, "cfg-a")
	require.NoError(t, h.Release())

	_, err := h.Invoke(context.Background(), "anything", nil)
	require.ErrorIs(t, err, domain.ErrPoolReleased)
}

func TestHandle_OperationPanicIsContained(t *testing.T) {
	r := workerpool.NewRegistry()
	r.RegisterOp("boom", func(_ context.Context, _ any) (any, error) {
		panic("bundle exploded")
	})
	r.RegisterOp("ok", func(_ context.Context, _ any) (any, error) {
		return "fine", nil
	})

	h := acquire(t, r, "cfg-a")
	defer func() { _ = h.Release() }()

	_, err := h.Invoke(context.Background(), "boom", nil)
	require.ErrorIs(t, err, domain.ErrWorkerPanic)
	assert.ErrorContains(t, err, "bundle exploded")

	// The worker that recovered still serves jobs.
	got, err := h.Invoke(context.Background(), "ok", nil)
	require.NoError(t, err)
	assert.Equal(t, "fine", got)
}

func TestHandle_OperationError(t *testing.T) {
	r := workerpool.NewRegistry()
	opErr := domain.ErrPackagingFailed
	r.RegisterOp("fail", func(_ context.Context, _ any) (any, error) {
		return nil, opErr
	})

	h := acquire(t, r, "cfg-a")
	defer func() { _ = h.Release() }()

	_, err := h.Invoke(context.Background(), "fail", nil)
	require.ErrorIs(t, err, opErr)
}

func TestHandle_CanceledContext(t *testing.T) {
	r := workerpool.NewRegistry()
	r.RegisterOp("noop", func(ctx context.Context, _ any) (any, error) {
		return nil, ctx.Err()
	})

	h := acquire(t, r, "cfg-a")
	defer func() { _ = h.Release() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Invoke(ctx, "noop", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandle_ConcurrentInvokes(t *testing.T) {
	r := workerpool.NewRegistry()
	var count atomic.Int64
	r.RegisterOp("count", func(_ context.Context, _ any) (any, error) {
		count.Add(1)
		return nil, nil
	})

	h, err := r.AcquireShared("cfg-a", ports.PoolOptions{Workers: 4})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, invokeErr := h.Invoke(context.Background(), "count", nil)
			assert.NoError(t, invokeErr)
		}()
	}
	wg.Wait()

	// Release drains the pool; every invocation has completed by now.
	require.NoError(t, h.Release())
	assert.Equal(t, int64(64), count.Load())
}

func TestRegistry_PoolRestartsAfterDrain(t *testing.T) {
	r := workerpool.NewRegistry()
	r.RegisterOp("ok", func(_ context.Context, _ any) (any, error) {
		return nil, nil
	})

	h := acquire(t, r, "cfg-a")
	require.NoError(t, h.Release())

	// A fresh acquisition after the pool drained starts a new pool.
	h2 := acquire(t, r, "cfg-a")
	_, err := h2.Invoke(context.Background(), "ok", nil)
	require.NoError(t, err)
	require.NoError(t, h2.Release())
}
