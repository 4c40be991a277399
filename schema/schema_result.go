package schema

// OptionSpec describes one option of a criterion for inspection output.
type OptionSpec struct {
	Label  string `json:"label"`
	Score  string `json:"score"` // serialized OptionScore, e.g. "3" or "FATAL"
	Fatal  bool   `json:"fatal"`
	Points int    `json:"points"`
}

// CriterionSpec describes one criterion of a scorecard template for
// inspection output.
type CriterionSpec struct {
	Position  int          `json:"position"` // 1-based
	Label     string       `json:"label"`
	Options   []OptionSpec `json:"options"`
	MaxPoints int          `json:"max_points"`
}

// InspectResult describes a scorecard template: its criteria, their
// options and the attainable points.
type InspectResult struct {
	Scorecard string          `json:"scorecard"`
	Criteria  []CriterionSpec `json:"criteria"`
	MaxPoints int             `json:"max_points"`
}

// CriterionResult holds the scored state of one criterion in a review.
type CriterionResult struct {
	Position  int    `json:"position"` // 1-based
	Label     string `json:"label"`
	Selected  string `json:"selected"` // selected option label, empty if unanswered
	Answered  bool   `json:"answered"`
	Fatal     bool   `json:"fatal"` // selection is a fatal option
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
	Comment   string `json:"comment"`
}

// ReviewResult holds the aggregate scores of a review plus the per-criterion
// detail used for output and history tracking.
type ReviewResult struct {
	Scorecard     string            `json:"scorecard"`
	Criteria      []CriterionResult `json:"criteria"`
	AnsweredCount int               `json:"answered_count"`
	TotalPoints   int               `json:"total_points"`
	MaxPoints     int               `json:"max_points"`
	Percent       float64           `json:"percent"`
	PercentString string            `json:"percent_string"`
	Fatal         bool              `json:"fatal"`
}
