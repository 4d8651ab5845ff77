package listing

import "strings"

// Category groups files by extension for coarse filtering.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryImages      Category = "images"
	CategoryVideos      Category = "videos"
	CategoryAudio       Category = "audio"
	CategoryDocuments   Category = "documents"
	CategoryArchives    Category = "archives"
	CategoryCode        Category = "code"
	CategoryText        Category = "text"
	CategoryExecutables Category = "executables"
	CategoryOther       Category = "other"
)

// Fixed category table. Unknown or empty extensions fail every specific
// category but pass CategoryAll.
var categoryExtensions = map[Category][]string{
	CategoryImages:      {"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "tiff", "tif"},
	CategoryVideos:      {"mp4", "avi", "mov", "mkv", "wmv", "flv", "webm", "m4v", "mpg", "mpeg"},
	CategoryAudio:       {"mp3", "wav", "ogg", "flac", "aac", "m4a", "wma"},
	CategoryDocuments:   {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt", "ods", "rtf"},
	CategoryArchives:    {"zip", "rar", "7z", "tar", "gz", "bz2", "xz"},
	CategoryCode:        {"go", "java", "py", "js", "ts", "c", "cpp", "h", "cs", "rb", "php", "html", "css", "sql", "sh"},
	CategoryText:        {"txt", "md", "log", "csv", "json", "xml", "yaml", "yml", "ini"},
	CategoryExecutables: {"exe", "msi", "bin", "app", "deb", "rpm", "jar"},
}

// CategoryOf reports the specific category an entry's extension belongs to,
// CategoryOther when none matches.
func CategoryOf(e FileEntry) Category {
	for cat, exts := range categoryExtensions {
		for _, ext := range exts {
			if e.Extension == ext {
				return cat
			}
		}
	}
	return CategoryOther
}

// SizeBucket is a fixed byte range used for coarse size filtering.
type SizeBucket string

const (
	SizeAny    SizeBucket = "any"
	SizeEmpty  SizeBucket = "empty"  // exactly 0 bytes
	SizeTiny   SizeBucket = "tiny"   // under 16 KiB
	SizeSmall  SizeBucket = "small"  // under 1 MiB
	SizeMedium SizeBucket = "medium" // under 100 MiB
	SizeLarge  SizeBucket = "large"  // under 1 GiB
	SizeHuge   SizeBucket = "huge"   // 1 GiB and up
)

// DateBucket is a fixed age range relative to "now".
// Yesterday is the rolling [24h, 48h) window, not a calendar day.
type DateBucket string

const (
	DateAny       DateBucket = "any"
	DateToday     DateBucket = "today"
	DateYesterday DateBucket = "yesterday"
	DateThisWeek  DateBucket = "week"
	DateThisMonth DateBucket = "month"
	DateThisYear  DateBucket = "year"
	DateOlder     DateBucket = "older"
)

// FilterCriteria is the active predicate configuration. The zero value of
// any field means "no constraint from this field".
type FilterCriteria struct {
	SearchText string     `json:"search_text"`
	Category   Category   `json:"category"`
	SizeBucket SizeBucket `json:"size_bucket"`
	DateBucket DateBucket `json:"date_bucket"`
	ShowHidden bool       `json:"show_hidden"`
}

// ParseCategory maps a query-string value onto a Category, falling back to
// CategoryAll for unknown input.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryExtensions[c]; ok {
		return c
	}
	return CategoryAll
}

// ParseSizeBucket falls back to SizeAny for unknown input.
func ParseSizeBucket(s string) SizeBucket {
	switch b := SizeBucket(strings.ToLower(strings.TrimSpace(s))); b {
	case SizeEmpty, SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge:
		return b
	default:
		return SizeAny
	}
}

// ParseDateBucket falls back to DateAny for unknown input.
func ParseDateBucket(s string) DateBucket {
	switch b := DateBucket(strings.ToLower(strings.TrimSpace(s))); b {
	case DateToday, DateYesterday, DateThisWeek, DateThisMonth, DateThisYear, DateOlder:
		return b
	default:
		return DateAny
	}
}
