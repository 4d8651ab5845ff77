package api

import (
	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/internal/api/handlers"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, PATCH, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

// RegisterRoutes wires the handler set onto the engine. authMW may be nil
// when auth is disabled.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, authMW gin.HandlerFunc) {
	// Enable CORS for preflight requests
	r.Use(corsMiddleware())

	api := r.Group("/api")
	api.GET("/health", h.Health)

	protected := api.Group("")
	if authMW != nil {
		protected.Use(authMW)
	}
	{
		// Vault browsing
		protected.GET("/browse", h.Browse)
		protected.GET("/stats", h.Stats)

		// File endpoints
		protected.POST("/upload", h.Upload)            // upload into a vault directory
		protected.GET("/files/download", h.Download)   // download a vault file
		protected.GET("/files/info", h.FileInfo)       // entry attributes + scan status
		protected.GET("/files/preview", h.Preview)     // image thumbnail
		protected.DELETE("/files", h.DeleteFile)       // delete a vault file

		// Backup endpoints
		protected.POST("/backups", h.CreateBackup)
		protected.GET("/backups", h.ListBackups)
		protected.POST("/backups/:id/restore", h.RestoreBackup)
		protected.DELETE("/backups/:id", h.DeleteBackup)
	}
}
