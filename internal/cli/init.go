// Package cli is the command surface. It keeps the shared setup helpers
// plus the cobra command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"offertory/internal/config"
	applog "offertory/internal/log"
	"offertory/internal/storage"
	"offertory/internal/storage/memory"
)

// SetupLogger initializes structured logging and sets it as the default.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentCLI})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the configured persistence backend.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DataBackend == "memory" {
		return memory.New(), nil
	}
	return storage.NewSQLiteStore(cfg.SQLiteDBPath)
}
