// Package graph implements asset graph construction by scanning entry
// files and following their import references.
package graph

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	hashfs "go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/watcher"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

const eventBuffer = 64

var _ ports.GraphBuilder = (*Builder)(nil)

// Builder implements ports.GraphBuilder. Each Build call scans from the
// requested entries, fingerprints every reachable asset, and reports assets
// whose content changed since the previous scan.
type Builder struct {
	hasher *hashfs.Hasher
	cache  ports.CacheStore
	logger ports.Logger

	subsMu sync.Mutex
	subs   []chan domain.GraphEvent

	watchMu   sync.Mutex
	fsWatcher *watcher.Watcher
	debouncer *watcher.Debouncer
	watchStop context.CancelFunc
	closed    bool
}

// NewBuilder creates a graph builder.
func NewBuilder(hasher *hashfs.Hasher, cache ports.CacheStore, logger ports.Logger) *Builder {
	return &Builder{
		hasher: hasher,
		cache:  cache,
		logger: logger,
	}
}

// Build scans the asset graph rooted at the given entries. Assets are
// visited breadth first so the graph's iteration order is deterministic for
// a given entry list.
func (b *Builder) Build(ctx context.Context, entries []string, _ []domain.Target, cfg *domain.Config) (*domain.AssetGraph, error) {
	g := domain.NewAssetGraph(cfg.Root)

	queue := make([]string, 0, len(entries))
	for _, entry := range entries {
		abs := entry
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cfg.Root, entry)
		}
		if _, err := os.Stat(abs); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(domain.ErrEntryNotFound, "entry", entry)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "entry", entry)
		}
		id, err := b.assetID(cfg.Root, abs)
		if err != nil {
			return nil, err
		}
		g.AddEntry(id)
		queue = append(queue, abs)
	}

	seen := make(map[string]bool, len(queue))
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		abs := queue[0]
		queue = queue[1:]
		if seen[abs] {
			continue
		}
		seen[abs] = true

		asset, depPaths, err := b.scanAsset(cfg.Root, abs)
		if err != nil {
			return nil, err
		}
		g.AddAsset(asset)
		queue = append(queue, depPaths...)

		if err := b.fingerprint(cfg.Root, asset); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// scanAsset reads one file, hashes it, and resolves its dependencies to
// absolute paths.
func (b *Builder) scanAsset(root, abs string) (*domain.Asset, []string, error) {
	//nolint:gosec // asset paths are resolved under the project root
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", abs)
	}

	id, err := b.assetID(root, abs)
	if err != nil {
		return nil, nil, err
	}

	kind := kindForPath(abs)
	specs := extractDependencies(kind, data)

	deps := make([]domain.InternedString, 0, len(specs))
	depPaths := make([]string, 0, len(specs))
	for _, spec := range specs {
		resolved, ok := resolveSpecifier(filepath.Dir(abs), spec)
		if !ok {
			// Bare module specifiers and unresolvable imports are left to
			// the runtime, same as missing optional imports.
			continue
		}
		depID, err := b.assetID(root, resolved)
		if err != nil {
			return nil, nil, err
		}
		deps = append(deps, depID)
		depPaths = append(depPaths, resolved)
	}

	return &domain.Asset{
		ID:           id,
		AbsPath:      abs,
		Kind:         kind,
		ContentHash:  b.hasher.HashBytes(data),
		Dependencies: deps,
	}, depPaths, nil
}

// fingerprint compares the asset against its stored fingerprint and, on
// change, publishes a transformed event and persists the new fingerprint.
func (b *Builder) fingerprint(root string, asset *domain.Asset) error {
	prev, err := b.cache.GetFingerprint(root, asset.ID.String())
	if err != nil {
		return err
	}
	if prev != nil && prev.ContentHash == asset.ContentHash {
		return nil
	}

	deps := make([]string, 0, len(asset.Dependencies))
	for _, dep := range asset.Dependencies {
		deps = append(deps, dep.String())
	}
	fp := domain.AssetFingerprint{
		AssetID:     asset.ID.String(),
		ContentHash: asset.ContentHash,
		Deps:        deps,
		ScannedAt:   time.Now().UTC(),
	}
	if err := b.cache.PutFingerprint(root, fp); err != nil {
		return err
	}

	b.publish(domain.GraphEvent{Kind: domain.GraphAssetTransformed, Asset: asset})
	return nil
}

// assetID derives a stable asset identifier: the slash-separated path
// relative to the project root.
func (b *Builder) assetID(root, abs string) (domain.InternedString, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return domain.InternedString{}, zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", abs)
	}
	return domain.NewInternedString(filepath.ToSlash(rel)), nil
}
