package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReviewResult() schema.ReviewResult {
	return schema.ReviewResult{
		Scorecard: "call_quality",
		Criteria: []schema.CriterionResult{
			{
				Position:  1,
				Label:     "Greeting",
				Selected:  "YES",
				Answered:  true,
				Points:    2,
				MaxPoints: 2,
				Comment:   "warm opening",
			},
			{
				Position:  2,
				Label:     "Compliance",
				Answered:  false,
				MaxPoints: 4,
			},
		},
		AnsweredCount: 1,
		TotalPoints:   2,
		MaxPoints:     6,
		Percent:       33.333333,
		PercentString: "33.33%",
		Fatal:         false,
	}
}

func sampleInspectResult() schema.InspectResult {
	return schema.InspectResult{
		Scorecard: "call_quality",
		Criteria: []schema.CriterionSpec{
			{
				Position: 1,
				Label:    "Greeting",
				Options: []schema.OptionSpec{
					{Label: "YES", Score: "2", Points: 2},
					{Label: "NO", Score: "0"},
				},
				MaxPoints: 2,
			},
			{
				Position: 2,
				Label:    "Compliance",
				Options: []schema.OptionSpec{
					{Label: "PASS", Score: "4", Points: 4},
					{Label: "FAIL", Score: "FATAL", Fatal: true},
				},
				MaxPoints: 4,
			},
		},
		MaxPoints: 6,
	}
}

func TestWriteReviewTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 2, Width: 120}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReviewTable(sampleReviewResult(), cfg, fmtFloat, intFmt, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Greeting")
	assert.Contains(t, out, "warm opening")
	assert.Contains(t, out, "Score: 2/6 (33.33%) Poor")
	assert.Contains(t, out, "Answered 1 of 2 criteria")
}

func TestWriteReviewTableFatal(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 2, Width: 120}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	result := sampleReviewResult()
	result.Fatal = true
	result.TotalPoints = 0
	result.Percent = 0
	result.PercentString = "0.00%"

	var buf bytes.Buffer
	err := writeReviewTable(result, cfg, fmtFloat, intFmt, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Score: 0/6 (0.00%) Failed")
}

func TestWriteCSVRowsForReview(t *testing.T) {
	_, intFmt := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVRowsForReview(w, sampleReviewResult(), intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "1,Greeting,YES,true,false,2,2,warm opening", lines[0])
	assert.Equal(t, "2,Compliance,,false,false,0,4,", lines[1])
}

func TestWriteJSONReviewResult(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONReviewResult(&buf, sampleReviewResult())
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "Poor", result["label"])
	assert.Equal(t, "call_quality", result["scorecard"])
	assert.Equal(t, float64(2), result["total_points"])
	assert.Equal(t, "33.33%", result["percent_string"])

	criteria, ok := result["criteria"].([]any)
	require.True(t, ok)
	require.Len(t, criteria, 2)
}

func TestWriteReviewParquetResult(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "review.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: outputPath}

	err := writeReviewParquetResult(sampleReviewResult(), cfg)
	require.NoError(t, err)
	assert.FileExists(t, outputPath)
}

func TestWriteReviewParquetResultRequiresFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := writeReviewParquetResult(sampleReviewResult(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output-file")
}

func TestWriteInspectTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 2, Width: 120}
	_, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeInspectTable(sampleInspectResult(), cfg, intFmt, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "YES=2 | NO=0")
	assert.Contains(t, out, "PASS=4 | FAIL=FATAL")
	assert.Contains(t, out, "call_quality has 2 criteria worth 6 points")
}

func TestWriteCSVRowsForInspect(t *testing.T) {
	_, intFmt := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVRowsForInspect(w, sampleInspectResult(), intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // one row per option

	assert.Equal(t, "1,Greeting,YES,2,2", lines[0])
	assert.Equal(t, "2,Compliance,FAIL,FATAL,4", lines[3])
}

func TestPrintInspectResultParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "out.parquet"}
	err := PrintInspectResult(sampleInspectResult(), cfg)
	require.Error(t, err)
}

func TestFormatOptionSpecs(t *testing.T) {
	assert.Empty(t, formatOptionSpecs(nil))
	assert.Equal(t, "YES=1", formatOptionSpecs([]schema.OptionSpec{{Label: "YES", Score: "1"}}))
}

func TestGetMaxTableLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{
			name:     "wide override",
			width:    145,
			expected: 100,
		},
		{
			name:     "narrow override clamps to minimum",
			width:    40,
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableLabelWidth(cfg))
		})
	}
}
