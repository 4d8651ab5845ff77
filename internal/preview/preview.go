package preview

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// DefaultWidth is used when the client does not ask for a specific size.
const DefaultWidth = 256

// Generator renders downscaled previews of vault images into a cache
// directory outside the vault, so thumbnails never show up in listings
// or backups.
type Generator struct {
	cacheDir string
}

func NewGenerator(cacheDir string) (*Generator, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preview cache: %v", err)
	}
	return &Generator{cacheDir: cacheDir}, nil
}

// Supported reports whether a preview can be rendered for the extension.
func Supported(ext string) bool {
	switch ext {
	case "jpg", "jpeg", "png", "gif", "bmp", "tiff", "tif":
		return true
	default:
		return false
	}
}

// For returns the path of a cached preview for the image at srcPath,
// rendering it on first use. The cache key covers the source path and the
// requested width, so resized requests do not collide.
func (g *Generator) For(srcPath string, width int) (string, error) {
	if width < 16 || width > 2048 {
		width = DefaultWidth
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", srcPath, width)))
	cached := filepath.Join(g.cacheDir, hex.EncodeToString(sum[:8])+".png")

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat source image: %v", err)
	}
	// Reuse the cached preview unless the source changed after it was made.
	if info, err := os.Stat(cached); err == nil && info.ModTime().After(srcInfo.ModTime()) {
		return cached, nil
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}

	// Resize while preserving aspect ratio
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, cached); err != nil {
		return "", fmt.Errorf("failed to save preview: %v", err)
	}
	return cached, nil
}
