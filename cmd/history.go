package cmd

import (
	"fmt"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/histstore"
	"github.com/huangsam/qams/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := histstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on review run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by scoring commands. This avoids template parsing
// and answer validation for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded review runs and exports",
	Long: `Manage the review run history recorded by 'qams score'.

Every scored run stores:
- Run metadata (timestamp, scorecard, threshold, pass/fail)
- Aggregate scores (points, percent, fatal flag)
- Per-criterion selections, points and comments

This enables trend tracking across reviews and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics and connection info
  clear   - Remove all recorded runs
  export  - Export data to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check history status
  qams history status

  # Export for analysis in pandas/DuckDB
  qams history export --output-file qams-data.parquet`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the review run history.

Displays:
- Backend type and connection status
- Storage location (SQLite file path)
- Total number of recorded runs
- Timestamp of the most recent run

Examples:
  # Check history status
  qams history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := histstore.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		histstore.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded review runs",
	Long: `Delete all stored review runs and per-criterion results.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  qams history export --output-file backup.parquet
  qams history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histstore.Manager.GetHistoryStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded review runs to Parquet format for analytics tools.

Exports two datasets:
- Review runs - one row per scored run with aggregate scores
- Criterion results - one row per criterion per run

Requires: --output-file parameter

Examples:
  # Export all data
  qams history export --output-file qams-data.parquet

  # Use with DuckDB for analysis
  qams history export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.review_runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histstore.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database schema migrations.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for the history store",
	Long: `Apply or roll back history store schema migrations.

Target versions:
  -1 (default) - migrate up to the latest version
   0           - roll back to the initial empty state
   N           - migrate to version N exactly

Examples:
  # Migrate to the latest schema
  qams history migrate

  # Roll everything back
  qams history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println("Migrations completed successfully.")
	},
}
