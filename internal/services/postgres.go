package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/govault-app/vault-service/internal/models"
	_ "github.com/lib/pq"
)

// PostgresStore holds the backup catalog and the per-file scan records.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, verifies the connection and creates the tables.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %v", err)
	}

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &PostgresStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	log.Println("Connected to PostgreSQL successfully")
	return s, nil
}

func (s *PostgresStore) createTables() error {
	query := `
    CREATE TABLE IF NOT EXISTS backups (
        id UUID PRIMARY KEY,
        object_name VARCHAR(500) NOT NULL,
        size_bytes BIGINT NOT NULL,
        entry_count INTEGER NOT NULL DEFAULT 0,
        method SMALLINT NOT NULL,
        compression SMALLINT NOT NULL,
        status VARCHAR(50) NOT NULL DEFAULT 'complete',
        created_at TIMESTAMPTZ NOT NULL
    );

    CREATE TABLE IF NOT EXISTS vault_files (
        id UUID PRIMARY KEY,
        path VARCHAR(1000) NOT NULL UNIQUE,
        name VARCHAR(255) NOT NULL,
        size BIGINT NOT NULL,
        extension VARCHAR(20) NOT NULL DEFAULT '',
        uploaded_at TIMESTAMPTZ NOT NULL,
        scan_status VARCHAR(50) NOT NULL DEFAULT 'pending',
        scanned_at TIMESTAMPTZ
    );
    `
	if _, err := s.db.Exec(query); err != nil {
		return err
	}

	indexQuery := `
    CREATE INDEX IF NOT EXISTS idx_backups_created_at ON backups(created_at DESC);
    CREATE INDEX IF NOT EXISTS idx_vault_files_scan_status ON vault_files(scan_status);
    `
	_, err := s.db.Exec(indexQuery)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CheckConnection(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- backup catalog ---

func (s *PostgresStore) SaveBackup(rec models.BackupRecord) error {
	_, err := s.db.Exec(`
        INSERT INTO backups (id, object_name, size_bytes, entry_count, method, compression, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.ObjectName, rec.SizeBytes, rec.EntryCount,
		int16(rec.Method), int16(rec.Compression), rec.Status, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save backup record: %v", err)
	}
	return nil
}

func (s *PostgresStore) GetBackup(id string) (models.BackupRecord, bool) {
	var rec models.BackupRecord
	var method, compression int16
	err := s.db.QueryRow(`
        SELECT id, object_name, size_bytes, entry_count, method, compression, status, created_at
        FROM backups WHERE id = $1`, id).
		Scan(&rec.ID, &rec.ObjectName, &rec.SizeBytes, &rec.EntryCount,
			&method, &compression, &rec.Status, &rec.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[DB] failed to load backup %s: %v", id, err)
		}
		return models.BackupRecord{}, false
	}
	rec.Method = byte(method)
	rec.Compression = byte(compression)
	return rec, true
}

func (s *PostgresStore) ListBackups() ([]models.BackupRecord, error) {
	rows, err := s.db.Query(`
        SELECT id, object_name, size_bytes, entry_count, method, compression, status, created_at
        FROM backups ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backups := make([]models.BackupRecord, 0)
	for rows.Next() {
		var rec models.BackupRecord
		var method, compression int16
		if err := rows.Scan(&rec.ID, &rec.ObjectName, &rec.SizeBytes, &rec.EntryCount,
			&method, &compression, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Method = byte(method)
		rec.Compression = byte(compression)
		backups = append(backups, rec)
	}
	return backups, rows.Err()
}

func (s *PostgresStore) UpdateBackupStatus(id, status string) error {
	_, err := s.db.Exec(`UPDATE backups SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (s *PostgresStore) DeleteBackup(id string) bool {
	res, err := s.db.Exec(`DELETE FROM backups WHERE id = $1`, id)
	if err != nil {
		log.Printf("[DB] failed to delete backup %s: %v", id, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// --- vault file records ---

func (s *PostgresStore) SaveFileRecord(rec models.FileRecord) error {
	_, err := s.db.Exec(`
        INSERT INTO vault_files (id, path, name, size, extension, uploaded_at, scan_status, scanned_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (path) DO UPDATE SET
            id = EXCLUDED.id,
            name = EXCLUDED.name,
            size = EXCLUDED.size,
            extension = EXCLUDED.extension,
            uploaded_at = EXCLUDED.uploaded_at,
            scan_status = EXCLUDED.scan_status,
            scanned_at = EXCLUDED.scanned_at`,
		rec.ID, rec.Path, rec.Name, rec.Size, rec.Extension,
		rec.UploadedAt, rec.ScanStatus, rec.ScannedAt)
	if err != nil {
		return fmt.Errorf("failed to save file record: %v", err)
	}
	return nil
}

func (s *PostgresStore) GetFileRecordByPath(path string) (models.FileRecord, bool) {
	var rec models.FileRecord
	err := s.db.QueryRow(`
        SELECT id, path, name, size, extension, uploaded_at, scan_status, scanned_at
        FROM vault_files WHERE path = $1`, path).
		Scan(&rec.ID, &rec.Path, &rec.Name, &rec.Size, &rec.Extension,
			&rec.UploadedAt, &rec.ScanStatus, &rec.ScannedAt)
	if err != nil {
		return models.FileRecord{}, false
	}
	return rec, true
}

func (s *PostgresStore) UpdateScanStatus(fileID, status string, scannedAt time.Time) error {
	_, err := s.db.Exec(`
        UPDATE vault_files SET scan_status = $1, scanned_at = $2 WHERE id = $3`,
		status, scannedAt, fileID)
	return err
}

func (s *PostgresStore) DeleteFileRecordByPath(path string) bool {
	res, err := s.db.Exec(`DELETE FROM vault_files WHERE path = $1`, path)
	if err != nil {
		log.Printf("[DB] failed to delete file record %s: %v", path, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// GetStats returns catalog counters for the health endpoint.
func (s *PostgresStore) GetStats() map[string]interface{} {
	stats := map[string]interface{}{}

	var backups, files, pending int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM backups`).Scan(&backups); err == nil {
		stats["backups"] = backups
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM vault_files`).Scan(&files); err == nil {
		stats["tracked_files"] = files
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM vault_files WHERE scan_status = 'pending'`).Scan(&pending); err == nil {
		stats["pending_scans"] = pending
	}
	return stats
}
