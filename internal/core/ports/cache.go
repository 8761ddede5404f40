package ports

import "go.trai.ch/stitch/internal/core/domain"

// CacheStore is the content-addressable persistent store. The orchestrator
// only requires EnsureCacheDir before any subsystem touches the cache; the
// graph builder and packager use the record operations.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// EnsureCacheDir creates the cache root if it does not exist.
	EnsureCacheDir(path string) error

	// GetFingerprint retrieves the stored fingerprint for an asset.
	// Returns nil, nil if not found.
	GetFingerprint(root, assetID string) (*domain.AssetFingerprint, error)

	// PutFingerprint stores an asset fingerprint.
	PutFingerprint(root string, fp domain.AssetFingerprint) error

	// PutBundleRecord stores the record of a packaged bundle.
	PutBundleRecord(root string, rec domain.BundleRecord) error
}
