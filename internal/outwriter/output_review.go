package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/parquet"
	"github.com/huangsam/qams/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReviewResult outputs the scored review, dispatching based on the output format configured.
func PrintReviewResult(result schema.ReviewResult, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReviewJSONResult(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReviewCSVResult(result, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReviewParquetResult(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReviewTable(result, cfg, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
	return nil
}

// writeReviewJSONResult handles opening the file and calling the JSON writer.
func writeReviewJSONResult(result schema.ReviewResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONReviewResult(w, result)
	}, "Wrote JSON")
}

// writeReviewCSVResult handles opening the file and calling the CSV writer.
func writeReviewCSVResult(result schema.ReviewResult, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"position",
			"criterion",
			"selected",
			"answered",
			"fatal",
			"points",
			"max_points",
			"comment",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForReview(csvWriter, result, intFmt)
		})
	}, "Wrote CSV")
}

// writeReviewParquetResult writes the per-criterion rows of a review to a
// Parquet file. A concrete output file is required since Parquet is a
// binary columnar format that cannot stream to stdout.
func writeReviewParquetResult(result schema.ReviewResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// Run ID stays zero for direct exports that bypass the history store.
	records := make([]schema.CriterionRecord, 0, len(result.Criteria))
	for _, cr := range result.Criteria {
		records = append(records, schema.CriterionRecord{
			RunID:    0,
			Position: cr.Position,
			Label:    cr.Label,
			Selected: cr.Selected,
			Answered: cr.Answered,
			Fatal:    cr.Fatal,
			Points:   cr.Points,
			Comment:  cr.Comment,
		})
	}

	if err := parquet.WriteCriterionResultsParquet(parquet.ConvertCriterionRecords(records), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeReviewTable generates and writes the human-readable scored table.
func writeReviewTable(result schema.ReviewResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"#", "Criterion", "Selected", "Points", "Max", "Comment"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxLabelWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, cr := range result.Criteria {
		selected := cr.Selected
		if !cr.Answered {
			selected = contract.UnansweredToken
		}
		row := []string{
			strconv.Itoa(cr.Position),                       // Position
			contract.TruncateLabel(cr.Label, maxLabelWidth), // Criterion
			selected,                                        // Selected option
			fmt.Sprintf(intFmt, cr.Points),                  // Points earned
			fmt.Sprintf(intFmt, cr.MaxPoints),               // Points attainable
			contract.TruncateLabel(cr.Comment, 30),          // Comment
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary stats below the table
	label := contract.GetPlainLabel(result.Percent, result.Fatal)
	if cfg.UseColors {
		label = contract.GetColorLabel(result.Percent, result.Fatal)
	}
	if _, err := fmt.Fprintf(writer, "Score: %d/%d (%s%%) %s\n", result.TotalPoints, result.MaxPoints, fmtFloat(result.Percent), label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Answered %d of %d criteria\n", result.AnsweredCount, len(result.Criteria)); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForReview writes the per-criterion review rows in CSV format.
func writeCSVRowsForReview(w *csv.Writer, result schema.ReviewResult, intFmt string) error {
	for _, cr := range result.Criteria {
		rec := []string{
			strconv.Itoa(cr.Position),         // Position
			cr.Label,                          // Criterion label
			cr.Selected,                       // Selected option label
			strconv.FormatBool(cr.Answered),   // Answered
			strconv.FormatBool(cr.Fatal),      // Fatal selection
			fmt.Sprintf(intFmt, cr.Points),    // Points earned
			fmt.Sprintf(intFmt, cr.MaxPoints), // Points attainable
			cr.Comment,                        // Comment
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONReviewResult writes the scored review in JSON format.
func writeJSONReviewResult(w io.Writer, result schema.ReviewResult) error {
	// 1. Prepare the data structure for JSON with the grade label added
	type JSONReviewResult struct {
		Label string `json:"label"`
		schema.ReviewResult
	}

	output := JSONReviewResult{
		Label:        contract.GetPlainLabel(result.Percent, result.Fatal),
		ReviewResult: result,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
