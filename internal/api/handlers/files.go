package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/listing"
)

// Download streams a vault file back to the client.
func (h *Handler) Download(c *gin.Context) {
	rel := c.Query("path")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	abs, err := h.Vault.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Name()))
	c.Header("Content-Type", "application/octet-stream")
	c.File(abs)
}

// FileInfo returns the entry attributes plus the catalog row, if any.
func (h *Handler) FileInfo(c *gin.Context) {
	rel := c.Query("path")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	abs, err := h.Vault.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}

	info, err := os.Stat(abs)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	entry := listing.FileEntry{
		Name:      info.Name(),
		Path:      h.Vault.Rel(abs),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		IsDir:     info.IsDir(),
		IsHidden:  strings.HasPrefix(info.Name(), "."),
		Extension: listing.ExtensionOf(info.Name(), info.IsDir()),
	}

	resp := gin.H{"entry": entry}
	if h.Store != nil {
		if rec, ok := h.Store.GetFileRecordByPath(entry.Path); ok {
			resp["scan_status"] = rec.ScanStatus
			resp["uploaded_at"] = rec.UploadedAt
		}
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteFile removes a file (or empty directory) from the vault, drops the
// catalog row and announces the deletion.
func (h *Handler) DeleteFile(c *gin.Context) {
	rel := c.Query("path")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	abs, err := h.Vault.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	if abs == h.Vault.Root() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete the vault root"})
		return
	}

	if _, err := os.Stat(abs); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if err := os.Remove(abs); err != nil {
		log.Printf("[FILES] failed to delete %s: %v", rel, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}

	relPath := h.Vault.Rel(abs)
	h.Store.DeleteFileRecordByPath(relPath)

	if h.Events != nil {
		userID, _ := userIDFromContext(c)
		if err := h.Events.Publish("vault.deleted", map[string]interface{}{
			"path":    relPath,
			"user_id": userID,
		}); err != nil {
			log.Printf("warning: failed to publish vault.deleted event: %v", err)
		}
	}

	h.refreshListing()
	c.JSON(http.StatusOK, gin.H{"message": "file deleted", "path": relPath})
}
