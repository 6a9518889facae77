package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportRecord represents an export history record.
type ExportRecord struct {
	ID             int64
	SourceFile     string
	Format         string
	OutputFile     string
	DirectiveCount int64
	BytesWritten   int64
	ExportedAt     time.Time
}

// Stats represents aggregate export statistics.
type Stats struct {
	TotalExports    int64
	TotalDirectives int64
	TotalBytes      int64
	LastExport      sql.NullString
}

// ExportHistory manages export history operations.
type ExportHistory struct {
	conn *Connection
}

// NewExportHistory creates a new ExportHistory instance.
func NewExportHistory(conn *Connection) *ExportHistory {
	return &ExportHistory{conn: conn}
}

// RecordExport records an export run.
// If a record already exists for the same source file and format, it is updated.
func (h *ExportHistory) RecordExport(record ExportRecord) error {
	query := `
		INSERT INTO export_history (source_file, format, output_file, directive_count, bytes_written)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source_file, format) DO UPDATE SET
			output_file = excluded.output_file,
			directive_count = excluded.directive_count,
			bytes_written = excluded.bytes_written,
			exported_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query,
		record.SourceFile,
		record.Format,
		record.OutputFile,
		record.DirectiveCount,
		record.BytesWritten,
	)

	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	return nil
}

// GetExport returns the history record for a source file and format.
// Returns nil if the pair has never been exported.
func (h *ExportHistory) GetExport(sourceFile, format string) (*ExportRecord, error) {
	query := `
		SELECT id, source_file, format, output_file, directive_count, bytes_written, exported_at
		FROM export_history
		WHERE source_file = ? AND format = ?
	`

	var record ExportRecord
	err := h.conn.QueryRow(query, sourceFile, format).Scan(
		&record.ID,
		&record.SourceFile,
		&record.Format,
		&record.OutputFile,
		&record.DirectiveCount,
		&record.BytesWritten,
		&record.ExportedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export record: %w", err)
	}

	return &record, nil
}

// ListRecent returns the most recent export records, newest first.
func (h *ExportHistory) ListRecent(limit int) ([]ExportRecord, error) {
	query := `
		SELECT id, source_file, format, output_file, directive_count, bytes_written, exported_at
		FROM export_history
		ORDER BY exported_at DESC
		LIMIT ?
	`

	rows, err := h.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var records []ExportRecord
	for rows.Next() {
		var record ExportRecord
		if err := rows.Scan(
			&record.ID,
			&record.SourceFile,
			&record.Format,
			&record.OutputFile,
			&record.DirectiveCount,
			&record.BytesWritten,
			&record.ExportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export records: %w", err)
	}

	return records, nil
}

// GetStats returns aggregate statistics over all export runs.
func (h *ExportHistory) GetStats() (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(directive_count), 0),
			COALESCE(SUM(bytes_written), 0),
			MAX(exported_at)
		FROM export_history
	`

	var stats Stats
	err := h.conn.QueryRow(query).Scan(
		&stats.TotalExports,
		&stats.TotalDirectives,
		&stats.TotalBytes,
		&stats.LastExport,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get export stats: %w", err)
	}

	return &stats, nil
}
