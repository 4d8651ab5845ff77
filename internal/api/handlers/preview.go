package handlers

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/listing"
	"github.com/govault-app/vault-service/internal/preview"
)

// Preview serves a downscaled rendition of a vault image.
func (h *Handler) Preview(c *gin.Context) {
	if h.Previews == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "previews disabled"})
		return
	}

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
	if !preview.Supported(listing.ExtensionOf(info.Name(), false)) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "no preview for this file type"})
		return
	}

	width, _ := strconv.Atoi(c.DefaultQuery("width", "0"))
	thumb, err := h.Previews.For(abs, width)
	if err != nil {
		log.Printf("[PREVIEW] failed for %s: %v", rel, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render preview"})
		return
	}

	c.Header("Content-Type", "image/png")
	c.File(thumb)
}
