package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/watcher"
)

// batchRecorder collects debouncer callback invocations.
type batchRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *batchRecorder) record(paths []string) {
	sort.Strings(paths)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *batchRecorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/proj/src/a.js")
		time.Sleep(10 * time.Millisecond)
		d.Add("/proj/src/b.js")
		time.Sleep(10 * time.Millisecond)
		d.Add("/proj/src/a.js")

		// Each Add restarted the window, so nothing fired yet.
		assert.Empty(t, rec.get())

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		batches := rec.get()
		require.Len(t, batches, 1, "one burst yields one batch")
		assert.Equal(t, []string{"/proj/src/a.js", "/proj/src/b.js"}, batches[0], "paths are deduplicated")
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/proj/src/a.js")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		d.Add("/proj/src/b.js")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		batches := rec.get()
		require.Len(t, batches, 2)
		assert.Equal(t, []string{"/proj/src/a.js"}, batches[0])
		assert.Equal(t, []string{"/proj/src/b.js"}, batches[1])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(time.Minute, rec.record)

		d.Add("/proj/src/a.js")
		d.Flush()

		batches := rec.get()
		require.Len(t, batches, 1, "Flush delivers synchronously without waiting for the window")
		assert.Equal(t, []string{"/proj/src/a.js"}, batches[0])

		// The stopped timer must not deliver the batch a second time.
		time.Sleep(2 * time.Minute)
		synctest.Wait()
		assert.Len(t, rec.get(), 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &batchRecorder{}
	d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

	d.Flush()
	assert.Empty(t, rec.get(), "no pending paths means no callback")
}
