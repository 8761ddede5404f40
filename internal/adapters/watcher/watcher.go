// Package watcher implements recursive file system watching for the
// rebuild loop.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stitch/internal/core/domain"
)

// Op describes the kind of change observed on a path.
type Op int

const (
	// OpWrite indicates a file's content changed.
	OpWrite Op = iota
	// OpCreate indicates a file or directory was created.
	OpCreate
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// Event is a single file system change.
type Event struct {
	Path string
	Op   Op
}

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":               true,
	".jj":                true,
	"node_modules":       true,
	domain.StitchDirName: true, // never rebuild from our own cache writes
}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      unique.Handle[string]
	events    chan Event
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		events:    make(chan Event, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = unique.Make(root)

	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip directories we cannot access and keep walking.
				return nil //nolint:nilerr // intentional
			}
			if d.IsDir() {
				if w.shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func (w *Watcher) shouldSkip(name string) bool {
	return shouldSkipDirectories[name]
}

// processEvents converts raw fsnotify events into Events and keeps the
// directory set current as new directories appear.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted := w.convertEvent(event)
			if converted == nil {
				continue
			}

			select {
			case w.events <- *converted:
			case <-ctx.Done():
				return
			}

			if converted.Op == OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.shouldSkip(info.Name()) {
					for dir := range w.watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

func (w *Watcher) convertEvent(event fsnotify.Event) *Event {
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		return &Event{Path: event.Name, Op: OpWrite}
	case event.Op&fsnotify.Create == fsnotify.Create:
		return &Event{Path: event.Name, Op: OpCreate}
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		return &Event{Path: event.Name, Op: OpRemove}
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		return &Event{Path: event.Name, Op: OpRename}
	default:
		return nil
	}
}
