package graph

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
)

var (
	importRe  = regexp.MustCompile(`(?m)^\s*import\s+(?:[^'"]*?\s+from\s+)?['"]([^'"]+)['"]`)
	exportRe  = regexp.MustCompile(`(?m)^\s*export\s+[^'"]*?\s+from\s+['"]([^'"]+)['"]`)
	requireRe = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
	cssRe     = regexp.MustCompile(`@import\s+(?:url\(\s*)?['"]?([^'")\s;]+)['"]?`)
)

// scriptExtensions are tried in order when a specifier omits the extension.
var scriptExtensions = []string{".js", ".mjs", ".ts", ".jsx", ".tsx"}

// kindForPath classifies a file by extension.
func kindForPath(path string) domain.AssetKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs", ".ts", ".jsx", ".tsx":
		return domain.KindScript
	case ".css", ".scss":
		return domain.KindStyle
	default:
		return domain.KindRaw
	}
}

// extractDependencies pulls import specifiers out of source text. Raw assets
// are opaque and yield nothing.
func extractDependencies(kind domain.AssetKind, data []byte) []string {
	var specs []string
	switch kind {
	case domain.KindScript:
		for _, re := range []*regexp.Regexp{importRe, exportRe, requireRe} {
			for _, m := range re.FindAllSubmatch(data, -1) {
				specs = append(specs, string(m[1]))
			}
		}
	case domain.KindStyle:
		for _, m := range cssRe.FindAllSubmatch(data, -1) {
			specs = append(specs, string(m[1]))
		}
	case domain.KindRaw:
	}
	return dedupe(specs)
}

// resolveSpecifier resolves a relative import specifier against the
// importing file's directory. Specifiers without an extension try the
// script extensions in order. Bare specifiers (package imports) and
// specifiers that resolve to nothing on disk report ok=false.
func resolveSpecifier(baseDir, spec string) (string, bool) {
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		return "", false
	}

	candidate := filepath.Join(baseDir, filepath.FromSlash(spec))
	if isFile(candidate) {
		return candidate, true
	}
	if filepath.Ext(candidate) == "" {
		for _, ext := range scriptExtensions {
			if withExt := candidate + ext; isFile(withExt) {
				return withExt, true
			}
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dedupe(specs []string) []string {
	if len(specs) < 2 {
		return specs
	}
	seen := make(map[string]bool, len(specs))
	out := specs[:0]
	for _, s := range specs {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
