package listing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrScopeUnavailable marks a directory that is missing or unreadable.
// Callers should treat it as an empty result with a user-visible warning,
// not as a fatal error.
var ErrScopeUnavailable = errors.New("scope unavailable")

// Load enumerates the direct children of dir. Nothing is cached; every call
// re-reads the directory. A per-entry stat failure keeps the entry with zero
// size and modification time rather than aborting the batch.
func Load(dir string) ([]FileEntry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScopeUnavailable, err)
	}

	entries := make([]FileEntry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		e := FileEntry{
			Name:      name,
			Path:      filepath.Join(dir, name),
			IsDir:     de.IsDir(),
			IsHidden:  strings.HasPrefix(name, "."),
			Extension: ExtensionOf(name, de.IsDir()),
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// FromList wraps an already-held slice (for example a drop payload) as an
// entry source, copying it so later pipeline runs see a stable snapshot.
func FromList(entries []FileEntry) []FileEntry {
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	return out
}
