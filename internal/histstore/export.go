package histstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/qams/internal/parquet"
)

// ExecuteHistoryExport exports the review history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.RunCount == 0 {
		return errors.New("no review history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total review runs: %d\n", status.RunCount)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve review runs: %w", err)
	}
	criteria, err := store.GetAllCriterionResults()
	if err != nil {
		return fmt.Errorf("failed to retrieve criterion results: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetCriteria := parquet.ConvertCriterionRecords(criteria)

	runsFile := outputFile + ".review_runs.parquet"
	if err := parquet.WriteReviewRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write review runs: %w", err)
	}
	fmt.Printf("Exported %d review runs to: %s\n", len(parquetRuns), runsFile)

	criteriaFile := outputFile + ".criterion_results.parquet"
	if err := parquet.WriteCriterionResultsParquet(parquetCriteria, criteriaFile); err != nil {
		return fmt.Errorf("failed to write criterion results: %w", err)
	}
	fmt.Printf("Exported %d criterion results to: %s\n", len(parquetCriteria), criteriaFile)

	return nil
}
