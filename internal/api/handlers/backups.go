package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateBackup archives and encrypts the whole vault tree.
func (h *Handler) CreateBackup(c *gin.Context) {
	rec, err := h.Backups.Create(c.Request.Context())
	if err != nil {
		log.Printf("[BACKUP] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create backup"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListBackups(c *gin.Context) {
	backups, err := h.Backups.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list backups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"backups": backups})
}

// RestoreBackup unpacks a backup into the vault root, overwriting files, then
// re-runs the live listing.
func (h *Handler) RestoreBackup(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.Backups.Restore(c.Request.Context(), id)
	if err != nil {
		log.Printf("[BACKUP] restore %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.refreshListing()
	c.JSON(http.StatusOK, gin.H{"message": "backup restored", "backup": rec})
}

func (h *Handler) DeleteBackup(c *gin.Context) {
	id := c.Param("id")
	if err := h.Backups.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[BACKUP] delete %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "backup deleted", "backup_id": id})
}
