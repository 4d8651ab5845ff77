package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 0, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("png"))
	assert.True(t, Supported("jpeg"))
	assert.False(t, Supported("pdf"))
	assert.False(t, Supported(""))
}

func TestForRendersAndCaches(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.png")
	writeTestImage(t, src, 640, 480)

	g, err := NewGenerator(t.TempDir())
	require.NoError(t, err)

	first, err := g.For(src, 64)
	require.NoError(t, err)
	require.FileExists(t, first)

	info1, err := os.Stat(first)
	require.NoError(t, err)

	second, err := g.For(src, 64)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info2, err := os.Stat(second)
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime())
}

func TestForDifferentWidthsUseDifferentCacheEntries(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.png")
	writeTestImage(t, src, 640, 480)

	g, err := NewGenerator(t.TempDir())
	require.NoError(t, err)

	a, err := g.For(src, 64)
	require.NoError(t, err)
	b, err := g.For(src, 128)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestForMissingSource(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	require.NoError(t, err)

	_, err = g.For(filepath.Join(t.TempDir(), "nope.png"), 64)
	assert.Error(t, err)
}
