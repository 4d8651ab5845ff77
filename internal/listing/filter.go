package listing

import (
	"strings"
	"time"
)

const (
	sizeTinyMax   = 16 << 10  // 16 KiB
	sizeSmallMax  = 1 << 20   // 1 MiB
	sizeMediumMax = 100 << 20 // 100 MiB
	sizeLargeMax  = 1 << 30   // 1 GiB
)

// Filter returns the entries satisfying the criteria. Checks are applied in
// short-circuit order: hidden, search text, category, size bucket, date
// bucket. The input slice is never modified.
func Filter(entries []FileEntry, c FilterCriteria) []FileEntry {
	now := time.Now()
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if !c.ShowHidden && e.IsHidden {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if !matchesCategory(e, c.Category) {
			continue
		}
		if !matchesSize(e, c.SizeBucket) {
			continue
		}
		if !matchesDate(e, c.DateBucket, now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesCategory(e FileEntry, cat Category) bool {
	if cat == "" || cat == CategoryAll {
		return true
	}
	exts, ok := categoryExtensions[cat]
	if !ok {
		return true
	}
	for _, ext := range exts {
		if e.Extension == ext {
			return true
		}
	}
	return false
}

// Directories always pass the size check.
func matchesSize(e FileEntry, bucket SizeBucket) bool {
	if bucket == "" || bucket == SizeAny || e.IsDir {
		return true
	}
	switch bucket {
	case SizeEmpty:
		return e.Size == 0
	case SizeTiny:
		return e.Size > 0 && e.Size < sizeTinyMax
	case SizeSmall:
		return e.Size >= sizeTinyMax && e.Size < sizeSmallMax
	case SizeMedium:
		return e.Size >= sizeSmallMax && e.Size < sizeMediumMax
	case SizeLarge:
		return e.Size >= sizeMediumMax && e.Size < sizeLargeMax
	case SizeHuge:
		return e.Size >= sizeLargeMax
	default:
		return true
	}
}

// A zero ModTime means the attribute could not be read; such entries pass
// every date bucket instead of failing the batch.
func matchesDate(e FileEntry, bucket DateBucket, now time.Time) bool {
	if bucket == "" || bucket == DateAny || e.ModTime.IsZero() {
		return true
	}
	age := now.Sub(e.ModTime)
	switch bucket {
	case DateToday:
		return age < 24*time.Hour
	case DateYesterday:
		return age >= 24*time.Hour && age < 48*time.Hour
	case DateThisWeek:
		return age < 7*24*time.Hour
	case DateThisMonth:
		return age < 30*24*time.Hour
	case DateThisYear:
		return age < 365*24*time.Hour
	case DateOlder:
		return age >= 365*24*time.Hour
	default:
		return true
	}
}
