// Package fs implements filesystem hashing helpers for the bundling pipeline.
package fs

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Walker enumerates files below a path in deterministic order.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles returns every regular file below path, sorted lexically so hash
// computations over directories are stable across platforms.
func (w *Walker) WalkFiles(path string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
