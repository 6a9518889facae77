// Package exportfile provides repository pattern for writing rendered export files.
package exportfile

import (
	"fmt"
	"os"
	"time"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/pathutil"
)

// Repository defines the interface for export file operations.
type Repository interface {
	// WriteExport writes a rendered export under the export root and returns its path
	WriteExport(name, format, content string) (string, error)

	// ReadExport reads a previously written export file
	ReadExport(name, format string) (string, error)

	// ExportExists checks if an export file exists
	ExportExists(name, format string) bool
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// WriteExport writes a rendered export file with a generated header comment.
// An existing file for the same name and format is replaced: exports are
// derived data and each run renders the full directive sequence.
func (r *FileSystemRepository) WriteExport(name, format, content string) (string, error) {
	filePath, err := r.pathResolver.GetExportFilePath(name, format)
	if err != nil {
		return "", fmt.Errorf("failed to get export file path: %w", err)
	}

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return "", fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	data := r.generateFileHeader(name, format) + content
	if err := os.WriteFile(filePath, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filePath, nil
}

// ReadExport reads the content of an export file.
// Returns empty string if the file doesn't exist.
func (r *FileSystemRepository) ReadExport(name, format string) (string, error) {
	filePath, err := r.pathResolver.GetExportFilePath(name, format)
	if err != nil {
		return "", fmt.Errorf("failed to get export file path: %w", err)
	}

	if !r.pathResolver.FileExists(filePath) {
		return "", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read export file: %w", err)
	}

	return string(data), nil
}

// ExportExists checks if an export file exists.
func (r *FileSystemRepository) ExportExists(name, format string) bool {
	filePath, err := r.pathResolver.GetExportFilePath(name, format)
	if err != nil {
		return false
	}

	return r.pathResolver.FileExists(filePath)
}

// generateFileHeader generates a header comment for an export file.
// Both target dialects treat ';' lines as comments.
func (r *FileSystemRepository) generateFileHeader(name, format string) string {
	now := time.Now().Format(time.RFC3339)
	return fmt.Sprintf(";; Export %q in %s format\n;; Generated at %s\n\n", name, format, now)
}
