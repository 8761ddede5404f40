// Package bundler groups a scanned asset graph into output bundles.
package bundler

import (
	"path"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

var _ ports.Bundler = (*Grouper)(nil)

// Grouper implements ports.Bundler. Grouping is pure: one bundle per
// entry per target, holding everything reachable from that entry.
type Grouper struct{}

// NewGrouper creates a new grouper.
func NewGrouper() *Grouper {
	return &Grouper{}
}

// Group partitions the asset graph into bundles for every configured target.
func (g *Grouper) Group(graph *domain.AssetGraph, cfg *domain.Config) (*domain.BundleGraph, error) {
	if graph.Len() == 0 {
		return nil, domain.ErrEmptyAssetGraph
	}

	bundles := make([]domain.Bundle, 0, len(cfg.Targets)*len(graph.Entries))
	for _, target := range cfg.Targets {
		for _, entry := range graph.Entries {
			asset, ok := graph.Asset(entry)
			if !ok {
				continue
			}
			outputName := outputNameFor(entry.String(), asset.Kind)
			bundles = append(bundles, domain.Bundle{
				ID:         target.Name + "/" + outputName,
				Target:     target.Name,
				OutputName: outputName,
				Assets:     graph.Reachable(entry),
			})
		}
	}

	return &domain.BundleGraph{Bundles: bundles}, nil
}

// outputNameFor derives the bundle file name from the entry's ID. Scripts
// and styles normalize to .js and .css; raw entries keep their name.
func outputNameFor(entryID string, kind domain.AssetKind) string {
	base := path.Base(entryID)
	stem := strings.TrimSuffix(base, path.Ext(base))

	switch kind {
	case domain.KindScript:
		return stem + ".js"
	case domain.KindStyle:
		return stem + ".css"
	default:
		return base
	}
}
