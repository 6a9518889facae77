// Package config provides configuration management for the ledger exporter.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Export  ExportConfig
	Debug   bool
	NodeEnv string
}

// ExportConfig represents export-related configuration.
type ExportConfig struct {
	// Root is the directory rendered export files are written under.
	Root string
	// DBPath is the SQLite file recording export history.
	DBPath string
	// Format is the default output dialect ("ledger" or "hledger").
	Format string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Export: ExportConfig{
			Root:   getEnvOrDefault("EXPORT_ROOT", "./exports"),
			DBPath: os.Getenv("EXPORT_DB_PATH"),
			Format: getEnvOrDefault("EXPORT_FORMAT", "ledger"),
		},
		Debug:   os.Getenv("DEBUG") == "true",
		NodeEnv: getEnvOrDefault("NODE_ENV", "development"),
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "export":
			switch path[1] {
			case "root":
				value = c.Export.Root
			case "dbPath":
				value = c.Export.DBPath
			case "format":
				value = c.Export.Format
			}
		}

		if value == "" {
			missing = append(missing, joinPath(path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// joinPath joins a path slice into a dot-separated string.
func joinPath(path []string) string {
	result := ""
	for i, p := range path {
		if i > 0 {
			result += "."
		}
		result += p
	}
	return result
}
