package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/db"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/export"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/exportfile"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/loader"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/pathutil"
)

var (
	inputFile  string
	formatName string
	exportName string
	dryRun     bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a YAML ledger to Ledger or HLedger text",
	Long: `Render the directives of a YAML ledger file into one of the two
supported plain-text dialects.

This command:
1. Loads the directive sequence from the input file
2. Renders each directive in order, one blank-line-separated record each
3. Writes the result under the export root
4. Records the run in SQLite export history

Example:
  ledger-export export --input ledger.yaml --format ledger
  ledger-export export --input ledger.yaml --format hledger --dry-run`,
	Run: runExport,
}

func init() {
	// Flags
	exportCmd.Flags().StringVar(&inputFile, "input", "", "Input YAML ledger file (required)")
	exportCmd.Flags().StringVar(&formatName, "format", "", "Output dialect: ledger or hledger (default from config)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "Output file stem (default: input file name)")
	exportCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered output instead of writing it")

	exportCmd.MarkFlagRequired("input")
}

func runExport(cmd *cobra.Command, args []string) {
	slog.Info("Starting export", "input", inputFile, "dry_run", dryRun)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate(
		[]string{"export", "root"},
		[]string{"export", "format"},
	); err != nil {
		exitOnError(err, "invalid configuration")
	}

	if formatName == "" {
		formatName = cfg.Export.Format
	}
	format, err := export.ParseFormat(formatName)
	exitOnError(err, "invalid export format")

	if exportName == "" {
		base := filepath.Base(inputFile)
		exportName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Load directives
	directives, err := loader.Load(inputFile)
	exitOnError(err, "failed to load ledger")
	slog.Info("Loaded directives", "count", len(directives))

	// Render the full sequence into one buffer; a failed render writes nothing.
	exporter, err := export.NewExporter(format)
	exitOnError(err, "failed to initialize exporter")

	var rendered strings.Builder
	err = exporter.Export(&rendered, directives)
	exitOnError(err, "failed to render directives")

	if dryRun {
		fmt.Printf("[DRY RUN] Would export %d directives as %s\n\n", len(directives), format)
		fmt.Print(rendered.String())
		return
	}

	// Initialize paths and output repository
	pathResolver := pathutil.New(pathutil.Config{
		ExportRoot:   cfg.Export.Root,
		DatabasePath: cfg.Export.DBPath,
	})
	repo := exportfile.NewFileSystemRepository(pathResolver)

	outputPath, err := repo.WriteExport(exportName, string(format), rendered.String())
	exitOnError(err, "failed to write export file")
	slog.Info("Wrote export", "path", outputPath, "bytes", rendered.Len())

	// Record the run in export history
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewExportHistory(conn)
	err = history.RecordExport(db.ExportRecord{
		SourceFile:     inputFile,
		Format:         string(format),
		OutputFile:     outputPath,
		DirectiveCount: int64(len(directives)),
		BytesWritten:   int64(rendered.Len()),
	})
	exitOnError(err, "failed to record export history")

	// Display final statistics
	stats, err := history.GetStats()
	if err == nil {
		fmt.Println("\n=== Export Statistics ===")
		fmt.Printf("Total exports:    %d\n", stats.TotalExports)
		fmt.Printf("Total directives: %d\n", stats.TotalDirectives)
		fmt.Printf("Total bytes:      %d\n", stats.TotalBytes)
		if stats.LastExport.Valid {
			fmt.Printf("Last export:      %s\n", stats.LastExport.String)
		}
		fmt.Println()
	}

	slog.Info("Export completed",
		"directives", len(directives),
		"format", format,
		"output", outputPath,
	)
}
