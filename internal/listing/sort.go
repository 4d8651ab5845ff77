package listing

import (
	"sort"
	"strings"
)

// SortKey selects the primary ordering attribute.
type SortKey string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"
	SortByDate SortKey = "date"
	SortByType SortKey = "type"
)

// SortSpec is the active ordering configuration.
type SortSpec struct {
	Key       SortKey `json:"key"`
	Ascending bool    `json:"ascending"`
}

// DefaultSortSpec orders by name, ascending.
func DefaultSortSpec() SortSpec {
	return SortSpec{Key: SortByName, Ascending: true}
}

// ParseSortKey falls back to SortByName for unknown input.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByName, SortBySize, SortByDate, SortByType:
		return k
	default:
		return SortByName
	}
}

// Sort returns a stably sorted copy of entries. Directories sort before
// files unconditionally; Ascending=false reverses the key comparator only,
// never the directories-first rule.
func Sort(entries []FileEntry, spec SortSpec) []FileEntry {
	out := make([]FileEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		c := compareByKey(a, b, spec.Key)
		if !spec.Ascending {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareByKey(a, b FileEntry, key SortKey) int {
	switch key {
	case SortBySize:
		// Directories compare as size 0.
		as, bs := a.Size, b.Size
		if a.IsDir {
			as = 0
		}
		if b.IsDir {
			bs = 0
		}
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	case SortByDate:
		switch {
		case a.ModTime.Before(b.ModTime):
			return -1
		case a.ModTime.After(b.ModTime):
			return 1
		}
		return 0
	case SortByType:
		return strings.Compare(strings.ToLower(a.Extension), strings.ToLower(b.Extension))
	default: // SortByName
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}
