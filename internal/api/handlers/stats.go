package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/listing"
)

// Stats summarizes the vault root: entry counts per category plus the
// catalog counters.
func (h *Handler) Stats(c *gin.Context) {
	entries, err := listing.Load(h.Vault.Root())
	if err != nil {
		resp := gin.H{"warning": "vault root unavailable"}
		if h.Store != nil {
			resp["catalog"] = h.Store.GetStats()
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	var files, dirs, hidden int
	var totalSize int64
	categories := map[string]int{}
	for _, e := range entries {
		// Hidden directories count too.
		if e.IsHidden {
			hidden++
		}
		if e.IsDir {
			dirs++
			continue
		}
		files++
		totalSize += e.Size
		categories[string(listing.CategoryOf(e))]++
	}

	resp := gin.H{
		"files":       files,
		"directories": dirs,
		"hidden":      hidden,
		"total_size":  totalSize,
		"categories":  categories,
	}
	if h.Store != nil {
		resp["catalog"] = h.Store.GetStats()
	}
	c.JSON(http.StatusOK, resp)
}
