package listing

import (
	"path/filepath"
	"strings"
	"time"
)

// FileEntry is an immutable snapshot of one file-system object. Changes on
// disk require a fresh Load, entries are never patched in place.
type FileEntry struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"modified"`
	IsDir     bool      `json:"is_dir"`
	IsHidden  bool      `json:"is_hidden"`
	Extension string    `json:"extension"`
}

// ExtensionOf derives the lower-cased extension without the leading dot.
// Directories always get an empty extension.
func ExtensionOf(name string, isDir bool) string {
	if isDir {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
