package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

// GraphBuilder owns the asset dependency graph. Build materializes a graph
// consistent with the current filesystem state; Subscribe exposes the
// asynchronous event stream (asset-transformed, invalidated) that drives
// watch mode.
//
//go:generate mockgen -source=graph_builder.go -destination=mocks/mock_graph_builder.go -package=mocks
type GraphBuilder interface {
	// Build (re)builds the graph for the given entries and returns it in a
	// consistent state. The returned graph is borrowed by the caller for the
	// duration of one build.
	Build(ctx context.Context, entries []string, targets []domain.Target, cfg *domain.Config) (*domain.AssetGraph, error)

	// Subscribe returns a channel of graph events. Events are emitted
	// asynchronously relative to any in-progress Build. The channel is
	// closed when the builder shuts down.
	Subscribe() <-chan domain.GraphEvent

	// Close stops event emission and releases watcher resources.
	Close() error
}
