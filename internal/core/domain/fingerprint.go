package domain

import "time"

// AssetFingerprint records what the graph builder knew about an asset the
// last time it was transformed. Persisted through the cache store so watch
// mode can skip unchanged assets across process restarts.
type AssetFingerprint struct {
	AssetID     string    `json:"assetId"`
	ContentHash string    `json:"contentHash"`
	Deps        []string  `json:"deps,omitempty"`
	ScannedAt   time.Time `json:"scannedAt"`
}

// BundleRecord is the cache record written after a bundle is packaged.
type BundleRecord struct {
	BundleID   string    `json:"bundleId"`
	OutputHash string    `json:"outputHash"`
	Size       int64     `json:"size"`
	PackagedAt time.Time `json:"packagedAt"`
}
