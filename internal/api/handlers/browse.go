package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/listing"
)

// Browse lists one directory of the vault through the filter/sort/page
// chain. Every request owns its own criteria, so concurrent clients never
// share state.
func (h *Handler) Browse(c *gin.Context) {
	rel := c.DefaultQuery("path", "")
	abs, err := h.Vault.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}

	criteria := listing.FilterCriteria{
		SearchText: c.Query("search"),
		Category:   listing.ParseCategory(c.DefaultQuery("category", "all")),
		SizeBucket: listing.ParseSizeBucket(c.DefaultQuery("size", "any")),
		DateBucket: listing.ParseDateBucket(c.DefaultQuery("date", "any")),
		ShowHidden: c.DefaultQuery("hidden", "false") == "true",
	}
	spec := listing.SortSpec{
		Key:       listing.ParseSortKey(c.DefaultQuery("sortBy", "name")),
		Ascending: c.DefaultQuery("order", "asc") != "desc",
	}

	// Parse pagination params
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if err != nil || pageSize < 1 {
		pageSize = 50
	}
	// Cap page size to avoid abuse
	if pageSize > 500 {
		pageSize = 500
	}

	entries, err := listing.Load(abs)
	if err != nil {
		// Unavailable scope is an empty result with a warning, never a 5xx.
		c.JSON(http.StatusOK, gin.H{
			"entries":        []listing.FileEntry{},
			"total_count":    0,
			"filtered_count": 0,
			"page":           1,
			"page_size":      pageSize,
			"total_pages":    1,
			"warning":        "directory unavailable",
		})
		return
	}

	filtered := listing.Filter(entries, criteria)
	sorted := listing.Sort(filtered, spec)

	state := listing.NewPageState(pageSize)
	state.SetTotalItems(len(sorted))
	state.GoToPage(page)
	visible := state.Slice(sorted)

	// Report vault-relative paths to the client.
	out := make([]listing.FileEntry, len(visible))
	for i, e := range visible {
		e.Path = h.Vault.Rel(e.Path)
		out[i] = e
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":        out,
		"total_count":    len(entries),
		"filtered_count": len(sorted),
		"page":           state.PageIndex(),
		"page_size":      state.PageSize(),
		"total_pages":    state.TotalPages(),
	})
}
