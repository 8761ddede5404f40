package fs_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/fs"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{16}$`)

func newHasher() *fs.Hasher {
	return fs.NewHasher(fs.NewWalker())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHasher_HashFile(t *testing.T) {
	h := newHasher()
	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", "console.log('hi');\n")

	got, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Regexp(t, hexDigest, got)

	// The file digest matches the digest of its content.
	assert.Equal(t, h.HashBytes([]byte("console.log('hi');\n")), got)

	again, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	other := writeFile(t, dir, "other.js", "console.log('bye');\n")
	otherHash, err := h.HashFile(other)
	require.NoError(t, err)
	assert.NotEqual(t, got, otherHash)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	h := newHasher()

	_, err := h.HashFile(filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
}

func TestHasher_HashBytes(t *testing.T) {
	h := newHasher()

	a := h.HashBytes([]byte("alpha"))
	b := h.HashBytes([]byte("beta"))
	assert.Regexp(t, hexDigest, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, h.HashBytes([]byte("alpha")))
}

func TestHasher_HashTree(t *testing.T) {
	h := newHasher()

	dir := t.TempDir()
	writeFile(t, dir, "src/a.js", "a")
	writeFile(t, dir, "src/b.js", "b")

	base, err := h.HashTree(dir)
	require.NoError(t, err)

	// Content change moves the digest.
	writeFile(t, dir, "src/a.js", "changed")
	changed, err := h.HashTree(dir)
	require.NoError(t, err)
	assert.NotEqual(t, base, changed)

	// A rename moves the digest even with identical content.
	renamed := t.TempDir()
	writeFile(t, renamed, "src/a.js", "a")
	writeFile(t, renamed, "src/c.js", "b")
	renamedHash, err := h.HashTree(renamed)
	require.NoError(t, err)
	assert.NotEqual(t, base, renamedHash)
}

func TestWalker_WalkFiles_SortedRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "nested/c.txt", "c")

	files, err := fs.NewWalker().WalkFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.txt"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), files[1])
	assert.Equal(t, filepath.Join(dir, "nested/c.txt"), files[2])
}
