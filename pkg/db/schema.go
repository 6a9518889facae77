// Package db provides SQLite database management for export history and metadata.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Export history table
-- Tracks which source ledgers have been rendered to which output files
CREATE TABLE IF NOT EXISTS export_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_file TEXT NOT NULL,         -- Path of the input ledger
    format TEXT NOT NULL,              -- 'ledger' or 'hledger'
    output_file TEXT NOT NULL,         -- Path of the rendered export
    directive_count INTEGER NOT NULL,  -- Directives rendered in this run
    bytes_written INTEGER NOT NULL,    -- Size of the rendered output
    exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(source_file, format)
);

CREATE INDEX IF NOT EXISTS idx_export_history_source
    ON export_history(source_file, format);

CREATE INDEX IF NOT EXISTS idx_export_history_exported_at
    ON export_history(exported_at);

-- Export metadata table
-- Stores key-value metadata about export operations
CREATE TABLE IF NOT EXISTS export_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
