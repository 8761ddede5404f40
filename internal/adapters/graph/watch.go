package graph

import (
	"context"

	"go.trai.ch/stitch/internal/adapters/watcher"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Subscribe registers an event channel. Events are delivered best effort; a
// subscriber that falls behind loses events rather than blocking the scan.
func (b *Builder) Subscribe() <-chan domain.GraphEvent {
	ch := make(chan domain.GraphEvent, eventBuffer)

	b.subsMu.Lock()
	defer b.subsMu.Unlock()
	b.subs = append(b.subs, ch)
	return ch
}

// Watch starts a recursive file watcher on root. Changed paths are coalesced
// by the debouncer and published as a single invalidation per window.
func (b *Builder) Watch(ctx context.Context, root string) error {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()

	if b.fsWatcher != nil {
		return nil
	}

	fsWatcher, err := watcher.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	if err := fsWatcher.Start(watchCtx, root); err != nil {
		cancel()
		_ = fsWatcher.Stop()
		return zerr.With(zerr.Wrap(err, "failed to watch project root"), "root", root)
	}

	b.fsWatcher = fsWatcher
	b.watchStop = cancel
	b.debouncer = watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		b.publish(domain.GraphEvent{Kind: domain.GraphInvalidated, Paths: paths})
	})

	go func() {
		// Every operation invalidates; editors often write through temp
		// files, so creates and renames matter as much as writes.
		for event := range fsWatcher.Events() {
			b.debouncer.Add(event.Path)
		}
	}()

	b.logger.Info("watching " + root)
	return nil
}

// Close stops watching and closes all subscriber channels.
func (b *Builder) Close() error {
	b.watchMu.Lock()
	if b.closed {
		b.watchMu.Unlock()
		return nil
	}
	b.closed = true

	var err error
	if b.fsWatcher != nil {
		b.watchStop()
		err = b.fsWatcher.Stop()
		b.fsWatcher = nil
	}
	b.watchMu.Unlock()

	b.subsMu.Lock()
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.subsMu.Unlock()

	return err
}

// publish delivers an event to every subscriber without blocking.
func (b *Builder) publish(event domain.GraphEvent) {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
