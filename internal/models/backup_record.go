package models

import "time"

// BackupRecord is one row of the backup catalog.
type BackupRecord struct {
	ID          string    `json:"id"`
	ObjectName  string    `json:"object_name"`
	SizeBytes   int64     `json:"size_bytes"`
	EntryCount  int       `json:"entry_count"`
	Method      byte      `json:"method"`
	Compression byte      `json:"compression"`
	Status      string    `json:"status"` // "complete" or "restored"
	CreatedAt   time.Time `json:"created_at"`
}
