// Package packager writes grouped bundles to their target output
// directories. Packaging runs on the shared worker pool, one invocation per
// bundle.
package packager

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	hashfs "go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Packager assembles one output file per bundle.
type Packager struct {
	hasher *hashfs.Hasher
	cache  ports.CacheStore
}

// NewPackager creates a packager.
func NewPackager(hasher *hashfs.Hasher, cache ports.CacheStore) *Packager {
	return &Packager{hasher: hasher, cache: cache}
}

// Op adapts PackageBundle to the worker pool's operation signature.
func (p *Packager) Op() func(ctx context.Context, args any) (any, error) {
	return func(ctx context.Context, args any) (any, error) {
		packArgs, ok := args.(domain.PackageArgs)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownOperation, "reason", "bad argument type")
		}
		return p.PackageBundle(ctx, packArgs)
	}
}

// PackageBundle concatenates the bundle's member assets into the target's
// output file and records the result in the cache.
func (p *Packager) PackageBundle(ctx context.Context, args domain.PackageArgs) (*domain.PackageResult, error) {
	var buf bytes.Buffer
	for _, id := range args.Bundle.Assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		asset, ok := args.Graph.Asset(id)
		if !ok {
			return nil, zerr.With(domain.ErrEntryNotFound, "asset", id.String())
		}

		//nolint:gosec // asset paths were resolved under the project root
		data, err := os.ReadFile(asset.AbsPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "asset", id.String())
		}

		buf.WriteString("/* stitch: " + id.String() + " */\n")
		buf.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	content := buf.Bytes()
	if args.Target.Minify {
		content = minify(content)
	}

	outputDir := filepath.Join(args.Config.Root, args.Target.OutputDir)
	if err := os.MkdirAll(outputDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "dir", outputDir)
	}

	outputPath := filepath.Join(outputDir, args.Bundle.OutputName)
	//nolint:gosec // output path is derived from the configured target
	if err := os.WriteFile(outputPath, content, domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", outputPath)
	}

	outputHash := p.hasher.HashBytes(content)
	record := domain.BundleRecord{
		BundleID:   args.Bundle.ID,
		OutputHash: outputHash,
		Size:       int64(len(content)),
		PackagedAt: time.Now().UTC(),
	}
	if err := p.cache.PutBundleRecord(args.Config.Root, record); err != nil {
		return nil, err
	}

	return &domain.PackageResult{
		BundleID:   args.Bundle.ID,
		OutputPath: outputPath,
		OutputHash: outputHash,
		Size:       int64(len(content)),
	}, nil
}

// minify strips blank lines and trailing whitespace. Anything heavier
// belongs to a real minifier behind the same operation.
func minify(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return []byte(strings.Join(out, "\n") + "\n")
}
