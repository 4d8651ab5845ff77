package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govault-app/vault-service/internal/listing"
	"github.com/govault-app/vault-service/internal/models"
)

const maxUploadSize = 200 << 20 // 200 MB per file

type UploadResult struct {
	FileName string `json:"file_name"`
	FileID   string `json:"file_id,omitempty"`
	Path     string `json:"path,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Upload stores one or more multipart files into a vault directory. Each
// file gets a catalog row and, when a scanner is configured, an async
// ClamAV scan.
func (h *Handler) Upload(c *gin.Context) {
	rel := c.DefaultQuery("path", "")
	dir, err := h.Vault.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare target directory"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	results := make([]UploadResult, 0, len(files))
	uploaded := 0
	for _, fh := range files {
		res := h.storeOne(c, dir, fh)
		if res.Success {
			uploaded++
		}
		results = append(results, res)
	}

	if uploaded > 0 {
		h.refreshListing()
	}

	c.JSON(http.StatusOK, gin.H{
		"uploaded": uploaded,
		"failed":   len(files) - uploaded,
		"results":  results,
	})
}

func (h *Handler) storeOne(c *gin.Context, dir string, fh *multipart.FileHeader) UploadResult {
	name := filepath.Base(fh.Filename)
	res := UploadResult{FileName: name}

	if fh.Size > maxUploadSize {
		res.Error = "file too large"
		return res
	}

	abs := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(fh, abs); err != nil {
		log.Printf("[UPLOAD] failed to save %s: %v", name, err)
		res.Error = "failed to store file"
		return res
	}

	rec := models.FileRecord{
		ID:         uuid.New().String(),
		Path:       h.Vault.Rel(abs),
		Name:       name,
		Size:       fh.Size,
		Extension:  listing.ExtensionOf(name, false),
		UploadedAt: time.Now(),
		ScanStatus: "pending",
	}
	if h.Scanner == nil {
		rec.ScanStatus = "skipped"
	}
	if err := h.Store.SaveFileRecord(rec); err != nil {
		log.Printf("[UPLOAD] failed to save record for %s: %v", rec.Path, err)
	}

	if h.Scanner != nil {
		go h.Scanner.ScanFile(rec, abs)
	}

	if h.Events != nil {
		userID, _ := userIDFromContext(c)
		if err := h.Events.Publish("vault.uploaded", map[string]interface{}{
			"file_id": rec.ID,
			"path":    rec.Path,
			"size":    rec.Size,
			"user_id": userID,
		}); err != nil {
			log.Printf("warning: failed to publish vault.uploaded event: %v", err)
		}
	}

	res.FileID = rec.ID
	res.Path = rec.Path
	res.Success = true
	return res
}
