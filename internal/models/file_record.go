package models

import "time"

// FileRecord tracks an uploaded vault file and its virus-scan status.
type FileRecord struct {
	ID         string     `json:"id"`
	Path       string     `json:"path"` // vault-relative
	Name       string     `json:"name"`
	Size       int64      `json:"size"`
	Extension  string     `json:"extension"`
	UploadedAt time.Time  `json:"uploaded_at"`
	ScanStatus string     `json:"scan_status"` // "pending", "clean" or "infected"
	ScannedAt  *time.Time `json:"scanned_at,omitempty"`
}
