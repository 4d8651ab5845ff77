package main

import (
	"os"
	"testing"

	"github.com/govault-app/vault-service/internal/configuration"
)

func TestMain(m *testing.M) {
	// Setup code here (runs once before all tests in this package)
	println("Setting up tests for main package...")

	exitCode := m.Run()

	// Teardown code here (runs once after all tests in this package)
	println("Tearing down tests for main package...")

	os.Exit(exitCode)
}

func TestConfigDefaults(t *testing.T) {
	cfg := configuration.Load()
	if cfg.Server.Port == "" {
		t.Error("expected a default server port")
	}
	if cfg.Vault.Root == "" {
		t.Error("expected a default vault root")
	}
	if cfg.Vault.CompressionLevel < 1 || cfg.Vault.CompressionLevel > 9 {
		t.Errorf("unexpected default compression level: %d", cfg.Vault.CompressionLevel)
	}
}
