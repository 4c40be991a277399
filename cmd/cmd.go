// Package cmd defines the command-line interface for qams.
package cmd

import (
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("select", "s", "", "Comma-separated answer tokens, one per criterion (label, zero-based index, or '-' for unanswered)")
	rootCmd.PersistentFlags().StringArrayP("comment", "c", nil, "Comment for a criterion in 'N:text' format (repeatable)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Write output to a file instead of stdout (required for parquet)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percent scores")
	rootCmd.PersistentFlags().Float64("threshold", contract.DefaultThreshold, "Minimum acceptable percent score for check (0-100)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().String("export-review", "", "Write the scored review to this CSV file")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
