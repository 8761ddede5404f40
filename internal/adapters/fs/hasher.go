package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes xxhash content fingerprints. Digests are rendered as
// 16-character hex strings; changing the algorithm invalidates every
// fingerprint users have cached.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher using the given walker for directory inputs.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile fingerprints the content of a single file.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the scanned project tree
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "file", path)
	}
	defer func() { _ = f.Close() }()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "file", path)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// HashBytes fingerprints an in-memory blob.
func (h *Hasher) HashBytes(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// HashTree fingerprints every regular file below path, folding the relative
// file names into the digest so renames change the result.
func (h *Hasher) HashTree(path string) (string, error) {
	files, err := h.walker.WalkFiles(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", path)
	}

	digest := xxhash.New()
	for _, file := range files {
		_, _ = digest.WriteString(file)
		fileHash, err := h.HashFile(file)
		if err != nil {
			return "", err
		}
		_, _ = digest.WriteString(fileHash)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
