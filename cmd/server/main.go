package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/govault-app/vault-service/cmd/middleware"
	"github.com/govault-app/vault-service/internal/api"
	"github.com/govault-app/vault-service/internal/api/handlers"
	"github.com/govault-app/vault-service/internal/backup"
	"github.com/govault-app/vault-service/internal/configuration"
	"github.com/govault-app/vault-service/internal/listing"
	"github.com/govault-app/vault-service/internal/preview"
	"github.com/govault-app/vault-service/internal/services"
	"github.com/govault-app/vault-service/internal/vault"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func main() {
	cfg := configuration.Load()

	if cfg.TracingEnabled {
		tracer.Start(tracer.WithService("vault-service"))
		defer tracer.Stop()
	}

	v, err := vault.Open(cfg.Vault.Root)
	if err != nil {
		log.Fatalf("Failed to open vault: %v", err)
	}
	log.Printf("Vault root: %s", v.Root())

	store, err := services.NewPostgresStore(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer store.Close()

	objects, err := services.NewObjectStore(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey,
		cfg.MinIO.SecretKey, cfg.MinIO.BucketName, cfg.MinIO.UseSSL)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	events, err := services.ConnectNATS(cfg.NATSURL)
	if err != nil {
		log.Printf("Warning: NATS unavailable, events disabled: %v", err)
		events = nil
	} else {
		defer events.Close()
	}

	var scanner *services.Scanner
	if cfg.CLAMAVURL != "" {
		scanner = services.NewScanner(cfg.CLAMAVURL, store, events)
	}

	backups := backup.NewService(v, objects, store, events,
		cfg.Vault.BackupPassphrase, cfg.Vault.CompressionLevel)

	previews, err := preview.NewGenerator(cfg.Vault.PreviewCacheDir)
	if err != nil {
		log.Printf("Warning: previews disabled: %v", err)
		previews = nil
	}

	// Live listing over the vault root. The listener announces each
	// completed run so dashboards can track what is visible.
	pipeline := listing.NewPipeline(
		func() ([]listing.FileEntry, error) { return listing.Load(v.Root()) },
		func(res listing.Results) {
			log.Printf("[LISTING] run complete visible=%d filtered=%d total=%d",
				len(res.Visible), res.FilteredCount, res.TotalCount)
			if events != nil {
				if err := events.Publish("vault.listing.changed", map[string]interface{}{
					"total_count":    res.TotalCount,
					"filtered_count": res.FilteredCount,
					"page":           res.Page,
					"total_pages":    res.TotalPages,
				}); err != nil {
					log.Printf("warning: failed to publish vault.listing.changed event: %v", err)
				}
			}
		},
	)
	defer pipeline.Close()
	pipeline.Refresh()

	h := handlers.New(v, store, objects, events, scanner, backups, pipeline, previews)

	if events != nil {
		if err := events.SubscribeAll(h.EventRoutes()); err != nil {
			log.Printf("Warning: failed to subscribe to vault events: %v", err)
		}
	}

	var authMW gin.HandlerFunc
	if cfg.Server.AuthDisabled {
		log.Println("Warning: auth is disabled")
	} else {
		auth, err := middleware.NewAuthenticator(cfg.KeycloakUrl, cfg.KeycloakAzp)
		if err != nil {
			log.Fatalf("Failed to initialize OIDC: %v", err)
		}
		authMW = auth.RequireAuth()
	}

	setupGracefulShutdown()

	r := gin.Default()
	if cfg.TracingEnabled {
		r.Use(gintrace.Middleware("vault-service"))
	}

	api.RegisterRoutes(r, h, authMW)

	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Shutting down gracefully...")
		os.Exit(0)
	}()
}
