package schema

import (
	"fmt"
	"strings"
)

// ParseReviewCSV builds a Review from scorecard CSV text.
//
// The grammar is deliberately simple: rows split on a single line feed,
// columns on a single comma, no quoting. The input is trimmed of leading
// and trailing whitespace before splitting. Row 0 is the header; its first
// column is ignored and the remaining columns carry option labels. Each
// data row names a criterion in column 0, and each remaining cell is
// parsed as an OptionScore. Cells that parse become options labeled by the
// matching header column; cells that don't are skipped silently, so a
// sparse grid where each criterion only uses some columns is valid.
//
// A structural problem (empty input, a data row whose column count differs
// from the header's) is a fatal error: no partial Review is returned.
// Imported criteria always start unanswered with empty comments.
func ParseReviewCSV(text string) (*Review, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("scorecard CSV has no rows")
	}

	rows := strings.Split(trimmed, CSVRowDelimiter)
	header := strings.Split(rows[0], CSVColDelimiter)

	criteria := make([]*Criterion, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cols := strings.Split(row, CSVColDelimiter)
		if len(cols) != len(header) {
			return nil, fmt.Errorf("scorecard CSV row %d has %d columns, header has %d",
				i+1, len(cols), len(header))
		}

		var options []CriterionOption
		for j, cell := range cols[1:] {
			score, ok := ParseOptionScore(cell)
			if !ok {
				continue
			}
			options = append(options, NewCriterionOption(header[j+1], score))
		}
		criteria = append(criteria, NewCriterion(cols[0], options))
	}

	return NewReview(criteria), nil
}

// ToCSV serializes the review to flat CSV text.
//
// Row 0 is the fixed header, row 1 carries the percent score, and each
// following row holds one criterion: its label, the selected option's
// label (empty when unanswered) and its comment. Selections and comments
// do not survive a ParseReviewCSV round trip; the import format is a
// scorecard template, not a completed review.
func (r *Review) ToCSV() string {
	var b strings.Builder

	b.WriteString(CSVExportHeader)
	b.WriteString(CSVRowDelimiter)

	b.WriteString(CSVPercentLabel)
	b.WriteString(CSVColDelimiter)
	b.WriteString(r.PercentScoreString())
	b.WriteString(CSVColDelimiter)

	for _, c := range r.criteria {
		selected := ""
		if opt, ok := c.Selection(); ok {
			selected = opt.Label()
		}
		b.WriteString(CSVRowDelimiter)
		b.WriteString(c.Label())
		b.WriteString(CSVColDelimiter)
		b.WriteString(selected)
		b.WriteString(CSVColDelimiter)
		b.WriteString(c.Comment())
	}

	return b.String()
}
