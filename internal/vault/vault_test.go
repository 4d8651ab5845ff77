package vault

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "vault")
	v, err := Open(root)
	require.NoError(t, err)
	assert.DirExists(t, v.Root())
}

func TestResolveInsideRoot(t *testing.T) {
	v, err := Open(t.TempDir())
	require.NoError(t, err)

	abs, err := v.Resolve("docs/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(v.Root(), "docs", "report.pdf"), abs)

	// Empty and "." map to the root itself.
	for _, rel := range []string{"", ".", "/"} {
		abs, err := v.Resolve(rel)
		require.NoError(t, err)
		assert.Equal(t, v.Root(), abs)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	v, err := Open(t.TempDir())
	require.NoError(t, err)

	for _, rel := range []string{"..", "../outside", "docs/../../outside", "a/../../../etc/passwd"} {
		_, err := v.Resolve(rel)
		assert.Error(t, err, "path %q must be rejected", rel)
	}
}

func TestRelRoundTrip(t *testing.T) {
	v, err := Open(t.TempDir())
	require.NoError(t, err)

	abs, err := v.Resolve("sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "sub/file.txt", v.Rel(abs))
}
