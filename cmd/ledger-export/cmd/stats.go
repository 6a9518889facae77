package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/config"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/db"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/pathutil"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display export statistics",
	Long: `Display statistics about past export runs.

Shows:
- Total number of export runs
- Total number of rendered directives
- Total bytes written
- Last export timestamp
- The most recent runs

Example:
  ledger-export stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate([]string{"export", "root"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	// Initialize PathResolver
	pathResolver := pathutil.New(pathutil.Config{
		ExportRoot:   cfg.Export.Root,
		DatabasePath: cfg.Export.DBPath,
	})

	// Open database connection
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	history := db.NewExportHistory(conn)

	stats, err := history.GetStats()
	exitOnError(err, "failed to get statistics")

	fmt.Println("\n=== Export Statistics ===")
	fmt.Printf("Total exports:    %d\n", stats.TotalExports)
	fmt.Printf("Total directives: %d\n", stats.TotalDirectives)
	fmt.Printf("Total bytes:      %d\n", stats.TotalBytes)

	if stats.LastExport.Valid {
		fmt.Printf("Last export:      %s\n", stats.LastExport.String)
	} else {
		fmt.Printf("Last export:      (never)\n")
	}

	recent, err := history.ListRecent(5)
	exitOnError(err, "failed to list recent exports")

	if len(recent) > 0 {
		fmt.Println("\nRecent runs:")
		for _, record := range recent {
			fmt.Printf("  %s  %-8s %s (%d directives)\n",
				record.ExportedAt.Format("2006-01-02 15:04:05"),
				record.Format,
				record.OutputFile,
				record.DirectiveCount,
			)
		}
	}

	fmt.Println()

	slog.Info("Statistics displayed successfully")
}
