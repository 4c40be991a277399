package schema

// CheckResult holds the outcome of a review quality gate.
type CheckResult struct {
	Scorecard     string
	Passed        bool
	Fatal         bool     // a fatal option was selected
	Threshold     float64  // minimum acceptable percent score
	Percent       float64
	PercentString string
	TotalPoints   int
	MaxPoints     int
	FatalCriteria []string // labels of criteria with fatal selections
	Unanswered    []string // labels of unanswered criteria
}
