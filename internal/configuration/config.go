package configuration

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Database       DatabaseConfig
	MinIO          MinIOConfig
	Server         ServerConfig
	Vault          VaultConfig
	NATSURL        string
	KeycloakUrl    string
	KeycloakAzp    string
	CLAMAVURL      string
	TracingEnabled bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type ServerConfig struct {
	Port         string
	AuthDisabled bool
}

type VaultConfig struct {
	Root             string
	PreviewCacheDir  string
	BackupPassphrase string
	CompressionLevel int
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "vaultuser"),
			Password: getEnv("DB_PASSWORD", "vaultpassword"),
			DBName:   getEnv("DB_NAME", "vaultservice"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		MinIO: MinIOConfig{
			Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
			BucketName: getEnv("MINIO_BUCKET", "vault-backups"),
			UseSSL:     getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			AuthDisabled: getEnv("AUTH_DISABLED", "false") == "true",
		},
		Vault: VaultConfig{
			Root:             getEnv("VAULT_ROOT", "./vault-data"),
			PreviewCacheDir:  getEnv("VAULT_PREVIEW_CACHE", "./vault-previews"),
			BackupPassphrase: getEnv("VAULT_BACKUP_PASSPHRASE", "vault-secret"),
			CompressionLevel: getEnvInt("VAULT_BACKUP_COMPRESSION", 6),
		},
		NATSURL:        getEnv("NATS_URL", "nats://localhost:4222"),
		CLAMAVURL:      getEnv("CLAMAV_URL", "tcp://localhost:3310"),
		KeycloakUrl:    getEnv("KEYCLOAK_URL", "http://localhost:8081/realms/govault"),
		KeycloakAzp:    getEnv("KEYCLOAK_ALLOWED_AZP", "frontend"),
		TracingEnabled: getEnv("DD_TRACE_ENABLED", "false") == "true",
	}
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
