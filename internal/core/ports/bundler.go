package ports

import "go.trai.ch/stitch/internal/core/domain"

// Bundler groups a built asset graph into deployable bundles per target.
// Group is pure: no I/O, deterministic for equal inputs.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	Group(graph *domain.AssetGraph, cfg *domain.Config) (*domain.BundleGraph, error)
}
