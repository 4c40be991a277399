package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTemplate is a small scorecard grid with a sparse second row: the
// MOSTLY column carries no score for the greeting criterion.
const sampleTemplate = `Criterion,YES,MOSTLY,NO
Did the agent resolve the issue?,3,2,0
Did the agent greet the customer?,1,,FATAL`

// TestParseReviewCSV checks the import grammar against the sample grid.
func TestParseReviewCSV(t *testing.T) {
	review, err := ParseReviewCSV(sampleTemplate)
	require.NoError(t, err)
	require.Equal(t, 2, review.Len())

	first := review.Criteria()[0]
	assert.Equal(t, "Did the agent resolve the issue?", first.Label())
	require.Len(t, first.Options(), 3)
	assert.Equal(t, "YES", first.Options()[0].Label())
	assert.Equal(t, 3, first.Options()[0].Score().Points())
	assert.Equal(t, 3, first.MaxPoints())

	// Sparse row: the empty MOSTLY cell contributes no option.
	second := review.Criteria()[1]
	require.Len(t, second.Options(), 2)
	assert.Equal(t, "YES", second.Options()[0].Label())
	assert.Equal(t, "NO", second.Options()[1].Label())
	assert.True(t, second.Options()[1].Score().IsFatal())
	assert.Equal(t, 1, second.MaxPoints())

	// Imported criteria start unanswered with empty comments.
	for _, c := range review.Criteria() {
		assert.False(t, c.Answered())
		assert.Equal(t, "", c.Comment())
	}

	assert.Equal(t, 4, review.MaxPoints())
}

// TestParseReviewCSVTrimsInput verifies that surrounding whitespace does
// not produce phantom rows.
func TestParseReviewCSVTrimsInput(t *testing.T) {
	review, err := ParseReviewCSV("\n\n" + sampleTemplate + "\n\n  ")
	require.NoError(t, err)
	assert.Equal(t, 2, review.Len())
}

// TestParseReviewCSVHeaderOnly checks that a template without data rows is
// a valid, empty review.
func TestParseReviewCSVHeaderOnly(t *testing.T) {
	review, err := ParseReviewCSV("Criterion,YES,NO")
	require.NoError(t, err)
	assert.Equal(t, 0, review.Len())
	assert.Equal(t, 0, review.MaxPoints())
}

// TestParseReviewCSVErrors covers the structural failures that must not
// yield a partial review.
func TestParseReviewCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "whitespace only", input: "  \n\t "},
		{name: "row with too few columns", input: "Criterion,YES,NO\nOnly label,3"},
		{name: "row with too many columns", input: "Criterion,YES,NO\nLabel,3,0,extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := ParseReviewCSV(tt.input)
			assert.Error(t, err)
			assert.Nil(t, review)
		})
	}
}

// TestReviewToCSV checks the export layout: fixed header, percent row and
// one row per criterion.
func TestReviewToCSV(t *testing.T) {
	review, err := ParseReviewCSV(sampleTemplate)
	require.NoError(t, err)

	review.Criteria()[0].SetSelection(1) // MOSTLY = 2
	review.Criteria()[0].SetComment("solved after escalation")

	lines := strings.Split(review.ToCSV(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Criterion,Selection,Comments", lines[0])
	assert.Equal(t, "Percent Score,50.00%,", lines[1])
	assert.Equal(t, "Did the agent resolve the issue?,MOSTLY,solved after escalation", lines[2])
	assert.Equal(t, "Did the agent greet the customer?,,", lines[3])
}

// TestReviewCSVRoundTrip verifies that exporting and re-importing preserves
// criterion labels and attainable points. Selections and comments are not
// expected to survive: the import side always starts unanswered.
func TestReviewCSVRoundTrip(t *testing.T) {
	original := threePointReview()
	original.Criteria()[0].SetSelection(0)
	original.Criteria()[0].SetComment("good")

	reimported, err := ParseReviewCSV(original.ToCSV())
	require.NoError(t, err)

	// The export carries two extra rows (header + percent); the percent row
	// becomes a criterion with no scorable options.
	require.Equal(t, original.Len()+1, reimported.Len())
	assert.Equal(t, CSVPercentLabel, reimported.Criteria()[0].Label())
	assert.Equal(t, 0, reimported.Criteria()[0].MaxPoints())

	for i, c := range original.Criteria() {
		got := reimported.Criteria()[i+1]
		assert.Equal(t, c.Label(), got.Label())
		assert.False(t, got.Answered())
		assert.Equal(t, "", got.Comment())
	}
}
