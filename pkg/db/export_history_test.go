package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *Connection {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "export.db"))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRecordAndGetExport(t *testing.T) {
	history := NewExportHistory(openTestDB(t))

	record := ExportRecord{
		SourceFile:     "ledger.yaml",
		Format:         "ledger",
		OutputFile:     "/tmp/exports/ledger.ledger",
		DirectiveCount: 12,
		BytesWritten:   340,
	}
	if err := history.RecordExport(record); err != nil {
		t.Fatalf("RecordExport() returned error: %v", err)
	}

	got, err := history.GetExport("ledger.yaml", "ledger")
	if err != nil {
		t.Fatalf("GetExport() returned error: %v", err)
	}
	if got == nil {
		t.Fatal("GetExport() returned nil for recorded export")
	}
	if got.DirectiveCount != 12 || got.BytesWritten != 340 {
		t.Errorf("unexpected record: %+v", got)
	}

	missing, err := history.GetExport("other.yaml", "ledger")
	if err != nil {
		t.Fatalf("GetExport() returned error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetExport() returned %+v for unknown source", missing)
	}
}

func TestRecordExportUpserts(t *testing.T) {
	history := NewExportHistory(openTestDB(t))

	first := ExportRecord{SourceFile: "ledger.yaml", Format: "ledger", OutputFile: "a", DirectiveCount: 1, BytesWritten: 10}
	second := ExportRecord{SourceFile: "ledger.yaml", Format: "ledger", OutputFile: "b", DirectiveCount: 2, BytesWritten: 20}

	if err := history.RecordExport(first); err != nil {
		t.Fatalf("RecordExport() returned error: %v", err)
	}
	if err := history.RecordExport(second); err != nil {
		t.Fatalf("RecordExport() returned error: %v", err)
	}

	got, err := history.GetExport("ledger.yaml", "ledger")
	if err != nil {
		t.Fatalf("GetExport() returned error: %v", err)
	}
	if got.OutputFile != "b" || got.DirectiveCount != 2 {
		t.Errorf("record was not updated: %+v", got)
	}

	stats, err := history.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned error: %v", err)
	}
	if stats.TotalExports != 1 {
		t.Errorf("TotalExports = %d, expected 1 after upsert", stats.TotalExports)
	}
}

func TestGetStats(t *testing.T) {
	history := NewExportHistory(openTestDB(t))

	stats, err := history.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned error: %v", err)
	}
	if stats.TotalExports != 0 || stats.LastExport.Valid {
		t.Errorf("unexpected stats for empty history: %+v", stats)
	}

	records := []ExportRecord{
		{SourceFile: "a.yaml", Format: "ledger", OutputFile: "a.ledger", DirectiveCount: 3, BytesWritten: 100},
		{SourceFile: "a.yaml", Format: "hledger", OutputFile: "a.hledger", DirectiveCount: 3, BytesWritten: 90},
	}
	for _, record := range records {
		if err := history.RecordExport(record); err != nil {
			t.Fatalf("RecordExport() returned error: %v", err)
		}
	}

	stats, err = history.GetStats()
	if err != nil {
		t.Fatalf("GetStats() returned error: %v", err)
	}
	if stats.TotalExports != 2 {
		t.Errorf("TotalExports = %d, expected 2", stats.TotalExports)
	}
	if stats.TotalDirectives != 6 {
		t.Errorf("TotalDirectives = %d, expected 6", stats.TotalDirectives)
	}
	if stats.TotalBytes != 190 {
		t.Errorf("TotalBytes = %d, expected 190", stats.TotalBytes)
	}
	if !stats.LastExport.Valid {
		t.Error("LastExport should be set")
	}
}

func TestListRecent(t *testing.T) {
	history := NewExportHistory(openTestDB(t))

	for _, source := range []string{"a.yaml", "b.yaml", "c.yaml"} {
		record := ExportRecord{SourceFile: source, Format: "ledger", OutputFile: source + ".ledger", DirectiveCount: 1, BytesWritten: 1}
		if err := history.RecordExport(record); err != nil {
			t.Fatalf("RecordExport() returned error: %v", err)
		}
	}

	recent, err := history.ListRecent(2)
	if err != nil {
		t.Fatalf("ListRecent() returned error: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("ListRecent(2) returned %d records", len(recent))
	}
}
