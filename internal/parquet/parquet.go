// Package parquet provides data structures and functions for exporting qams
// review history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/qams/schema"
	"github.com/parquet-go/parquet-go"
)

// ReviewRun represents a single scored review run with metadata.
// This struct maps to the qams_review_runs database table.
type ReviewRun struct {
	// RunID is the unique identifier for this review run
	RunID int64 `parquet:"run_id,snappy"`

	// Scorecard is the display name of the scorecard template
	Scorecard string `parquet:"scorecard,snappy"`

	// CriteriaCount is the number of criteria in the review
	CriteriaCount int32 `parquet:"criteria_count,snappy"`

	// AnsweredCount is the number of criteria with a selection
	AnsweredCount int32 `parquet:"answered_count,snappy"`

	// TotalPoints is the achieved point total, zeroed by any fatal selection
	TotalPoints int32 `parquet:"total_points,snappy"`

	// MaxPoints is the best achievable point total
	MaxPoints int32 `parquet:"max_points,snappy"`

	// PercentScore is 100 * total / max (zero when max is zero)
	PercentScore float64 `parquet:"percent_score,snappy"`

	// HasFatal indicates a fatal option was selected
	HasFatal bool `parquet:"has_fatal,snappy"`

	// Passed indicates the run met its quality threshold
	Passed bool `parquet:"passed,snappy"`

	// CreatedAt is when the run was recorded (TIMESTAMP, nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CriterionResult represents one criterion's scored state within a run.
// This struct maps to the qams_criterion_results database table.
type CriterionResult struct {
	// RunID references the parent review run
	RunID int64 `parquet:"run_id,snappy"`

	// Position is the 1-based position of the criterion in the review
	Position int32 `parquet:"position,snappy"`

	// Label is the criterion's display label
	Label string `parquet:"label,snappy"`

	// Selected is the selected option's label, empty when unanswered
	Selected string `parquet:"selected,snappy"`

	// Answered indicates whether a selection was made
	Answered bool `parquet:"answered,snappy"`

	// Fatal indicates the selection was a fatal option
	Fatal bool `parquet:"fatal,snappy"`

	// Points is the point contribution of the selection
	Points int32 `parquet:"points,snappy"`

	// Comment is the reviewer's free-text comment
	Comment string `parquet:"comment,snappy"`
}

// ConvertRunRecords converts store records to their Parquet representation.
func ConvertRunRecords(records []schema.RunRecord) []ReviewRun {
	runs := make([]ReviewRun, len(records))
	for i, r := range records {
		runs[i] = ReviewRun{
			RunID:         r.RunID,
			Scorecard:     r.Scorecard,
			CriteriaCount: int32(r.CriteriaCount),
			AnsweredCount: int32(r.AnsweredCount),
			TotalPoints:   int32(r.TotalPoints),
			MaxPoints:     int32(r.MaxPoints),
			PercentScore:  r.Percent,
			HasFatal:      r.Fatal,
			Passed:        r.Passed,
			CreatedAt:     r.CreatedAt,
			ConfigParams:  r.ConfigParams,
		}
	}
	return runs
}

// ConvertCriterionRecords converts store records to their Parquet representation.
func ConvertCriterionRecords(records []schema.CriterionRecord) []CriterionResult {
	results := make([]CriterionResult, len(records))
	for i, r := range records {
		results[i] = CriterionResult{
			RunID:    r.RunID,
			Position: int32(r.Position),
			Label:    r.Label,
			Selected: r.Selected,
			Answered: r.Answered,
			Fatal:    r.Fatal,
			Points:   int32(r.Points),
			Comment:  r.Comment,
		}
	}
	return results
}

// WriteReviewRunsParquet writes a slice of ReviewRun structs to a Parquet file.
func WriteReviewRunsParquet(data []ReviewRun, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// WriteCriterionResultsParquet writes a slice of CriterionResult structs to a
// Parquet file.
func WriteCriterionResultsParquet(data []CriterionResult, outputPath string) error {
	return writeParquetFile(data, outputPath)
}

// writeParquetFile writes rows of any schema-tagged struct type to a file.
func writeParquetFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
