package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesDirectoryChain(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sections")
	w := NewWriter(dir)

	path, err := w.Write("recipes-1-abc", "content")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recipes-1-abc.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	w := NewWriter(t.TempDir())

	first, err := w.Write("notes-1", "old content")
	require.NoError(t, err)
	second, err := w.Write("notes-1", "new content")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))

	entries, err := os.ReadDir(w.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_UTF8Content(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.Write("unicode-1", "héllo wörld 日本語 ✓")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld 日本語 ✓", string(data))
}
