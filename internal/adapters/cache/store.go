// Package cache implements the content-addressable persistent store under
// the project's .stitch directory.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

const bundleDirName = "bundles"

// Store implements ports.CacheStore using a file-per-record strategy. Record
// file names are derived from the record key, so concurrent writers for
// different assets never contend on one file.
type Store struct{}

// NewStore creates a new cache store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// EnsureCacheDir creates the cache root if it does not exist.
func (s *Store) EnsureCacheDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", path)
	}
	return nil
}

// GetFingerprint retrieves the stored fingerprint for an asset.
// Returns nil, nil if not found.
func (s *Store) GetFingerprint(root, assetID string) (*domain.AssetFingerprint, error) {
	filename := s.fingerprintFilename(root, assetID)
	//nolint:gosec // path is built from the cache root and a hashed key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var fp domain.AssetFingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return &fp, nil
}

// PutFingerprint stores an asset fingerprint.
func (s *Store) PutFingerprint(root string, fp domain.AssetFingerprint) error {
	return s.write(s.fingerprintFilename(root, fp.AssetID), fp)
}

// PutBundleRecord stores the record of a packaged bundle.
func (s *Store) PutBundleRecord(root string, rec domain.BundleRecord) error {
	return s.write(s.bundleFilename(root, rec.BundleID), rec)
}

func (s *Store) write(filename string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	//nolint:gosec // path is built from the cache root and a hashed key
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) fingerprintFilename(root, assetID string) string {
	return filepath.Join(root, domain.DefaultFingerprintPath(), hashKey(assetID)+".json")
}

func (s *Store) bundleFilename(root, bundleID string) string {
	return filepath.Join(root, domain.DefaultCachePath(), bundleDirName, hashKey(bundleID)+".json")
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
