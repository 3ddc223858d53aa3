// campus-crud/config/config.go

package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file if one exists. Real deployments set the
// variables directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}
}

// GetEnv returns the value of the variable or the given fallback.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
