package services

import (
	"log"
	"os"
	"time"

	clamd "github.com/dutchcoders/go-clamd"
	"github.com/govault-app/vault-service/internal/models"
)

// Scanner checks uploaded vault files against ClamAV. Scans run on their own
// goroutine after the upload response has been sent; an infected file is
// removed from the vault and flagged in the catalog.
type Scanner struct {
	clamURL string
	store   *PostgresStore
	events  *EventBus
}

func NewScanner(clamURL string, store *PostgresStore, events *EventBus) *Scanner {
	return &Scanner{clamURL: clamURL, store: store, events: events}
}

// ScanFile scans the file at absPath and records the verdict for rec.
func (s *Scanner) ScanFile(rec models.FileRecord, absPath string) {
	c := clamd.NewClamd(s.clamURL)
	response, err := c.ScanFile(absPath)
	if err != nil {
		log.Println("Scan failed:", err)
		return
	}

	status := "clean"
	for res := range response {
		if res.Status == clamd.RES_FOUND {
			log.Printf("Virus detected in %s: %s", rec.Path, res.Description)
			status = "infected"

			// remove the infected file from the vault
			if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
				log.Println("Failed to delete infected file:", err)
			}

			if s.events != nil {
				if err := s.events.Publish("vault.infected", map[string]interface{}{
					"file_id":   rec.ID,
					"path":      rec.Path,
					"signature": res.Description,
				}); err != nil {
					log.Printf("warning: failed to publish vault.infected event: %v", err)
				}
			}
		}
	}

	if err := s.store.UpdateScanStatus(rec.ID, status, time.Now()); err != nil {
		log.Println("Failed to update scan status:", err)
	} else {
		log.Printf("Scan finished for %s: %s", rec.Path, status)
	}
}
