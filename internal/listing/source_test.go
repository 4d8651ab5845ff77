package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnumeratesDirectChildren(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.PDF"), []byte("pdf"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	// Children of subdirectories must not appear (non-recursive).
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("x"), 0644))

	entries, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byName := map[string]FileEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	pdf := byName["report.PDF"]
	assert.Equal(t, "pdf", pdf.Extension, "extension is derived and lower-cased")
	assert.Equal(t, int64(3), pdf.Size)
	assert.False(t, pdf.ModTime.IsZero())
	assert.False(t, pdf.IsDir)
	assert.False(t, pdf.IsHidden)

	hidden := byName[".hidden"]
	assert.True(t, hidden.IsHidden)

	sub := byName["sub"]
	assert.True(t, sub.IsDir)
	assert.Empty(t, sub.Extension, "directories have no extension")
}

func TestLoadMissingScope(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Nil(t, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScopeUnavailable)
}

func TestFromListCopies(t *testing.T) {
	src := []FileEntry{{Name: "a"}, {Name: "b"}}
	got := FromList(src)

	require.Equal(t, src, got)
	got[0].Name = "mutated"
	assert.Equal(t, "a", src[0].Name)
}

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, "txt", ExtensionOf("notes.TXT", false))
	assert.Equal(t, "gz", ExtensionOf("archive.tar.gz", false))
	assert.Empty(t, ExtensionOf("Makefile", false))
	assert.Empty(t, ExtensionOf("photos", true))
}
