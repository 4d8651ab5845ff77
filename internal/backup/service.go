package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/govault-app/vault-service/internal/models"
	"github.com/govault-app/vault-service/internal/services"
	"github.com/govault-app/vault-service/internal/vault"
)

// Service creates and restores encrypted vault backups. Archives go to the
// object store, catalog rows to Postgres, lifecycle events to NATS.
type Service struct {
	vault       *vault.Vault
	objects     *services.ObjectStore
	catalog     *services.PostgresStore
	events      *services.EventBus
	key         []byte
	compression byte
}

func NewService(v *vault.Vault, objects *services.ObjectStore, catalog *services.PostgresStore,
	events *services.EventBus, passphrase string, compression int) *Service {
	if compression < 1 || compression > 9 {
		compression = 6
	}
	return &Service{
		vault:       v,
		objects:     objects,
		catalog:     catalog,
		events:      events,
		key:         DeriveKey(passphrase),
		compression: byte(compression),
	}
}

// Create archives the whole vault tree, encrypts it and uploads the result.
func (s *Service) Create(ctx context.Context) (models.BackupRecord, error) {
	plaintext, count, err := zipTree(s.vault.Root(), int(s.compression))
	if err != nil {
		return models.BackupRecord{}, err
	}

	iv, err := newIV()
	if err != nil {
		return models.BackupRecord{}, err
	}
	ciphertext, err := encrypt(s.key, iv, plaintext)
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("failed to encrypt backup: %v", err)
	}

	now := time.Now()
	header := Header{
		Version:     FormatVersion,
		Method:      MethodAES256CBC,
		Compression: s.compression,
		CreatedAt:   now,
		IV:          iv,
	}

	var buf bytes.Buffer
	if _, err := header.WriteTo(&buf); err != nil {
		return models.BackupRecord{}, err
	}
	buf.Write(ciphertext)

	rec := models.BackupRecord{
		ID:          uuid.New().String(),
		SizeBytes:   int64(buf.Len()),
		EntryCount:  count,
		Method:      MethodAES256CBC,
		Compression: s.compression,
		Status:      "complete",
		CreatedAt:   now,
	}
	rec.ObjectName = fmt.Sprintf("backups/%s.gvbk", rec.ID)

	if err := s.objects.Upload(ctx, rec.ObjectName, buf.Bytes(), "application/octet-stream"); err != nil {
		return models.BackupRecord{}, fmt.Errorf("failed to upload backup: %v", err)
	}

	if err := s.catalog.SaveBackup(rec); err != nil {
		// cleanup object if the catalog write fails
		if delErr := s.objects.Delete(ctx, rec.ObjectName); delErr != nil {
			log.Printf("warning: failed to cleanup backup object after catalog failure: %v", delErr)
		}
		return models.BackupRecord{}, err
	}

	s.publish("vault.backup.created", rec)
	return rec, nil
}

// Restore downloads a backup, verifies its header, decrypts it and unpacks
// the archive back into the vault root. Existing files are overwritten.
func (s *Service) Restore(ctx context.Context, id string) (models.BackupRecord, error) {
	rec, ok := s.catalog.GetBackup(id)
	if !ok {
		return models.BackupRecord{}, fmt.Errorf("backup %s not found", id)
	}

	data, err := s.objects.Download(ctx, rec.ObjectName)
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("failed to download backup: %v", err)
	}

	r := bytes.NewReader(data)
	header, err := ReadHeader(r)
	if err != nil {
		return models.BackupRecord{}, err
	}
	ciphertext, err := io.ReadAll(r)
	if err != nil {
		return models.BackupRecord{}, err
	}

	plaintext, err := decrypt(s.key, header.IV, ciphertext)
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("failed to decrypt backup: %v", err)
	}

	if err := unzipTree(plaintext, s.vault.Root()); err != nil {
		return models.BackupRecord{}, err
	}

	if err := s.catalog.UpdateBackupStatus(id, "restored"); err != nil {
		log.Printf("warning: failed to update backup status: %v", err)
	}
	s.publish("vault.backup.restored", rec)
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]models.BackupRecord, error) {
	return s.catalog.ListBackups()
}

// Delete removes the archive object and the catalog row.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, ok := s.catalog.GetBackup(id)
	if !ok {
		return fmt.Errorf("backup %s not found", id)
	}

	if err := s.objects.Delete(ctx, rec.ObjectName); err != nil {
		return fmt.Errorf("failed to delete backup object: %v", err)
	}
	if !s.catalog.DeleteBackup(id) {
		return fmt.Errorf("failed to delete backup record")
	}

	s.publish("vault.backup.deleted", rec)
	return nil
}

func (s *Service) publish(subject string, rec models.BackupRecord) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(subject, map[string]interface{}{
		"backup_id":   rec.ID,
		"object_name": rec.ObjectName,
		"size_bytes":  rec.SizeBytes,
		"entry_count": rec.EntryCount,
		"created_at":  rec.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("warning: failed to publish %s event: %v", subject, err)
	}
}
