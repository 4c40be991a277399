package schema

import "time"

// RunRecord represents a row from the qams_review_runs table.
type RunRecord struct {
	RunID         int64
	Scorecard     string
	CriteriaCount int
	AnsweredCount int
	TotalPoints   int
	MaxPoints     int
	Percent       float64
	Fatal         bool
	Passed        bool
	CreatedAt     time.Time
	ConfigParams  *string
}

// CriterionRecord represents a row from the qams_criterion_results table.
type CriterionRecord struct {
	RunID    int64
	Position int
	Label    string
	Selected string
	Answered bool
	Fatal    bool
	Points   int
	Comment  string
}

// HistoryStatus holds status information about the review history store.
type HistoryStatus struct {
	Backend   string
	Connected bool
	Location  string // DB file path or redacted connection target
	RunCount  int64
	LastRunAt *time.Time
}
