package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/watcher"
)

func startWatcher(t *testing.T, root string) <-chan watcher.Event {
	t.Helper()
	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	events := make(chan watcher.Event, 128)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return events
}

// waitForPath drains events until one matches path or the deadline passes.
func waitForPath(t *testing.T, events <-chan watcher.Event, path string) watcher.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event stream closed while waiting for %s", path)
			}
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_EmitsFileEvents(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	path := filepath.Join(root, "app.js")
	require.NoError(t, os.WriteFile(path, []byte("console.log(1);\n"), 0o644))
	ev := waitForPath(t, events, path)
	require.Contains(t, []watcher.Op{watcher.OpCreate, watcher.OpWrite}, ev.Op)

	require.NoError(t, os.Remove(path))
	ev = waitForPath(t, events, path)
	require.Equal(t, watcher.OpRemove, ev.Op)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0o750))
	waitForPath(t, events, sub)

	// Give the watcher a moment to register the new directory.
	time.Sleep(200 * time.Millisecond)

	path := filepath.Join(sub, "util.js")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	waitForPath(t, events, path)
}

func TestWatcher_SkipsInternalDirectories(t *testing.T) {
	root := t.TempDir()
	skipped := filepath.Join(root, "node_modules")
	require.NoError(t, os.Mkdir(skipped, 0o750))

	events := startWatcher(t, root)

	// A file write inside a skipped directory produces no events; a write in
	// the root right after proves the stream is live.
	require.NoError(t, os.WriteFile(filepath.Join(skipped, "dep.js"), []byte("x"), 0o644))
	marker := filepath.Join(root, "marker.js")
	require.NoError(t, os.WriteFile(marker, []byte("y"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.False(t, strings.HasPrefix(ev.Path, skipped), "skipped directory leaked an event")
			if ev.Path == marker {
				return
			}
		case <-deadline:
			t.Fatal("no event for marker file")
		}
	}
}
