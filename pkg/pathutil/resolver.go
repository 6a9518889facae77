// Package pathutil provides centralized path management for export files and directories.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages paths for rendered export files and the history database.
type PathResolver struct {
	exportRoot   string
	databasePath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// ExportRoot is the root directory for rendered export files (e.g., ~/accounting/exports)
	ExportRoot string
	// DatabasePath is the path to the SQLite database file for export history
	DatabasePath string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {ExportRoot}/.export/export.db
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.ExportRoot, ".export", "export.db")
	}

	return &PathResolver{
		exportRoot:   config.ExportRoot,
		databasePath: dbPath,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - EXPORT_ROOT: Root directory for export files (required)
//   - EXPORT_DB_PATH: Database file path (optional)
func FromEnv() (*PathResolver, error) {
	exportRoot := os.Getenv("EXPORT_ROOT")
	if exportRoot == "" {
		return nil, fmt.Errorf("EXPORT_ROOT environment variable is required")
	}

	return New(Config{
		ExportRoot:   exportRoot,
		DatabasePath: os.Getenv("EXPORT_DB_PATH"),
	}), nil
}

// GetExportRoot returns the export root directory.
func (p *PathResolver) GetExportRoot() string {
	return p.exportRoot
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetExportFilePath returns the output path for a named export in a format.
// The name must be a bare file stem; the format becomes the extension.
// Example: ~/accounting/exports/main.ledger
func (p *PathResolver) GetExportFilePath(name, format string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid export name: %q. Expected a bare file name", name)
	}
	if format == "" {
		return "", fmt.Errorf("export format must not be empty")
	}

	filename := fmt.Sprintf("%s.%s", name, format)
	return filepath.Join(p.exportRoot, filename), nil
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
