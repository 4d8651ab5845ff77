package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports the service and its dependencies. Degraded dependencies do
// not fail the endpoint; the payload names the broken piece instead.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	checks := gin.H{}

	if err := h.Store.CheckConnection(ctx); err != nil {
		status = "degraded"
		checks["postgres"] = err.Error()
	} else {
		checks["postgres"] = "ok"
	}

	if err := h.Objects.CheckConnection(ctx); err != nil {
		status = "degraded"
		checks["minio"] = err.Error()
	} else {
		checks["minio"] = "ok"
	}

	if h.Events == nil {
		checks["nats"] = "disabled"
	} else {
		checks["nats"] = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": checks,
	})
}
