package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintInspectResult outputs a scorecard template description, dispatching
// based on the output format configured.
func PrintInspectResult(result schema.InspectResult, cfg *contract.Config) error {
	_, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeInspectJSONResult(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeInspectCSVResult(result, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output supports scored reviews only")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInspectTable(result, cfg, intFmt, w)
		}, "Wrote table")
	}
	return nil
}

// writeInspectJSONResult handles opening the file and calling the JSON writer.
func writeInspectJSONResult(result schema.InspectResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeInspectCSVResult handles opening the file and calling the CSV writer.
// Each option becomes its own row so the output stays flat.
func writeInspectCSVResult(result schema.InspectResult, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"position",
			"criterion",
			"option",
			"score",
			"max_points",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForInspect(csvWriter, result, intFmt)
		})
	}, "Wrote CSV")
}

// writeInspectTable generates and writes the human-readable template table.
func writeInspectTable(result schema.InspectResult, cfg *contract.Config, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"#", "Criterion", "Options", "Max"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxLabelWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, cr := range result.Criteria {
		row := []string{
			strconv.Itoa(cr.Position),                       // Position
			contract.TruncateLabel(cr.Label, maxLabelWidth), // Criterion
			formatOptionSpecs(cr.Options),                   // Option labels with scores
			fmt.Sprintf(intFmt, cr.MaxPoints),               // Points attainable
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

	if _, err := fmt.Fprintf(writer, "%s has %d criteria worth %d points\n", result.Scorecard, len(result.Criteria), result.MaxPoints); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForInspect writes one row per criterion option in CSV format.
func writeCSVRowsForInspect(w *csv.Writer, result schema.InspectResult, intFmt string) error {
	for _, cr := range result.Criteria {
		for _, opt := range cr.Options {
			rec := []string{
				strconv.Itoa(cr.Position),         // Position
				cr.Label,                          // Criterion label
				opt.Label,                         // Option label
				opt.Score,                         // Serialized option score
				fmt.Sprintf(intFmt, cr.MaxPoints), // Points attainable
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatOptionSpecs joins option labels with their serialized scores for
// table display, e.g. "YES=1 | NO=FATAL".
func formatOptionSpecs(options []schema.OptionSpec) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, fmt.Sprintf("%s=%s", opt.Label, opt.Score))
	}
	return strings.Join(parts, " | ")
}
