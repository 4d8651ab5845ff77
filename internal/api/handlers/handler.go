package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/backup"
	"github.com/govault-app/vault-service/internal/listing"
	"github.com/govault-app/vault-service/internal/preview"
	"github.com/govault-app/vault-service/internal/services"
	"github.com/govault-app/vault-service/internal/vault"
)

// Handler carries the service dependencies into the route handlers. All of
// them are constructed in main and injected here; optional collaborators
// (events, scanner, pipeline) may be nil and are guarded at the call sites.
type Handler struct {
	Vault    *vault.Vault
	Store    *services.PostgresStore
	Objects  *services.ObjectStore
	Events   *services.EventBus
	Scanner  *services.Scanner
	Backups  *backup.Service
	Pipeline *listing.Pipeline
	Previews *preview.Generator
}

func New(v *vault.Vault, store *services.PostgresStore, objects *services.ObjectStore,
	events *services.EventBus, scanner *services.Scanner, backups *backup.Service,
	pipeline *listing.Pipeline, previews *preview.Generator) *Handler {
	return &Handler{
		Vault:    v,
		Store:    store,
		Objects:  objects,
		Events:   events,
		Scanner:  scanner,
		Backups:  backups,
		Pipeline: pipeline,
		Previews: previews,
	}
}

func userIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	return id.(string), true
}

// refreshListing re-runs the live listing pipeline after a vault mutation.
func (h *Handler) refreshListing() {
	if h.Pipeline != nil {
		h.Pipeline.Refresh()
	}
}
