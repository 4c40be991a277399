// Package schema has the scorecard data model, typed constants and CSV codec
// shared by all parts of qams.
package schema

import "fmt"

// CriterionOption is one selectable answer to a criterion. It pairs a
// user-facing label (e.g. "YES" or "NO") with an OptionScore. Options are
// immutable after construction.
type CriterionOption struct {
	label string
	score OptionScore
}

// NewCriterionOption creates a new CriterionOption.
func NewCriterionOption(label string, score OptionScore) CriterionOption {
	return CriterionOption{label: label, score: score}
}

// Label returns the user-facing label of this option.
func (o CriterionOption) Label() string {
	return o.label
}

// Score returns the OptionScore associated with this option.
func (o CriterionOption) Score() OptionScore {
	return o.score
}

// Criterion is a single scored question in a review. It owns a fixed,
// ordered set of options, an optional selection and a free-text comment.
// The selection and comment mutate in place over the review's lifetime.
type Criterion struct {
	label     string
	options   []CriterionOption
	selection int // index into options, or noSelection
	comment   string
}

// noSelection marks an unanswered criterion.
const noSelection = -1

// NewCriterion creates a new Criterion with no selection and an empty
// comment. The option list is fixed after construction; a criterion with
// zero options can never be answered.
func NewCriterion(label string, options []CriterionOption) *Criterion {
	return &Criterion{label: label, options: options, selection: noSelection}
}

// Label returns the user-facing label of this criterion.
func (c *Criterion) Label() string {
	return c.label
}

// Options returns the ordered options of this criterion. The returned
// slice is owned by the criterion and must not be modified.
func (c *Criterion) Options() []CriterionOption {
	return c.options
}

// SetSelection selects the option at the given index, replacing any
// previous selection. An out-of-range index is a caller bug (e.g. a UI
// offering a choice that doesn't exist) and panics rather than returning
// a recoverable error.
func (c *Criterion) SetSelection(index int) {
	if index < 0 || index >= len(c.options) {
		panic(fmt.Sprintf("schema: selection index %d out of range for criterion %q with %d options",
			index, c.label, len(c.options)))
	}
	c.selection = index
}

// ClearSelection returns the criterion to the unanswered state.
func (c *Criterion) ClearSelection() {
	c.selection = noSelection
}

// Answered reports whether a selection has been made.
func (c *Criterion) Answered() bool {
	return c.selection != noSelection
}

// Selection returns the currently selected option, or ok == false when
// the criterion is unanswered.
func (c *Criterion) Selection() (CriterionOption, bool) {
	if c.selection == noSelection {
		return CriterionOption{}, false
	}
	return c.options[c.selection], true
}

// SelectionIndex returns the index of the current selection, or ok == false
// when the criterion is unanswered.
func (c *Criterion) SelectionIndex() (int, bool) {
	if c.selection == noSelection {
		return 0, false
	}
	return c.selection, true
}

// SelectionScore returns the OptionScore of the current selection, or
// ok == false when the criterion is unanswered.
func (c *Criterion) SelectionScore() (OptionScore, bool) {
	opt, ok := c.Selection()
	if !ok {
		return OptionScore{}, false
	}
	return opt.Score(), true
}

// MaxPoints returns the highest point value among this criterion's
// options. Fatal options represent a quality failure, not a point
// ceiling, so they contribute nothing to the maximum: an empty or
// all-fatal criterion has a maximum of zero. The result is never
// negative.
func (c *Criterion) MaxPoints() int {
	maxPoints := 0
	for _, opt := range c.options {
		score := opt.Score()
		if score.IsFatal() {
			continue
		}
		if pts := score.Points(); pts > maxPoints {
			maxPoints = pts
		}
	}
	return maxPoints
}

// Comment returns the free-text comment for this criterion.
func (c *Criterion) Comment() string {
	return c.comment
}

// SetComment sets the free-text comment for this criterion.
func (c *Criterion) SetComment(text string) {
	c.comment = text
}

// Review is the full collection of criteria being scored together. It
// exclusively owns its criteria; scores are computed on demand from the
// current criterion states and never cached.
type Review struct {
	criteria []*Criterion
}

// NewReview creates a new Review over the given criteria.
func NewReview(criteria []*Criterion) *Review {
	return &Review{criteria: criteria}
}

// Criteria returns the ordered criteria of this review. The returned
// slice is owned by the review; callers may mutate individual criteria
// in place but must not resize the slice.
func (r *Review) Criteria() []*Criterion {
	return r.criteria
}

// Len returns the number of criteria in this review.
func (r *Review) Len() int {
	return len(r.criteria)
}

// MaxPoints returns the best achievable point total for this review: the
// sum of every criterion's maximum. It is independent of any current
// selections and serves as the denominator for percentage scoring.
func (r *Review) MaxPoints() int {
	total := 0
	for _, c := range r.criteria {
		total += c.MaxPoints()
	}
	return total
}

// TotalPoints returns the point total for the current selections. Any
// fatal selection nullifies the entire review, yielding zero regardless
// of other criteria. Unanswered criteria contribute nothing.
func (r *Review) TotalPoints() int {
	total := 0
	for _, c := range r.criteria {
		score, ok := c.SelectionScore()
		if !ok {
			continue
		}
		if score.IsFatal() {
			return 0
		}
		total += score.Points()
	}
	return total
}

// HasFatalSelection reports whether any criterion's current selection is
// a fatal option.
func (r *Review) HasFatalSelection() bool {
	for _, c := range r.criteria {
		if score, ok := c.SelectionScore(); ok && score.IsFatal() {
			return true
		}
	}
	return false
}

// AnsweredCount returns the number of criteria with a selection.
func (r *Review) AnsweredCount() int {
	count := 0
	for _, c := range r.criteria {
		if c.Answered() {
			count++
		}
	}
	return count
}

// PercentScore returns 100 * TotalPoints / MaxPoints. A review with no
// attainable points (zero MaxPoints) scores zero percent; that convention
// replaces the IEEE-754 NaN/Inf propagation a naive division would give
// and is pinned by the package tests.
func (r *Review) PercentScore() float64 {
	maxPoints := r.MaxPoints()
	if maxPoints == 0 {
		return 0
	}
	return 100 * float64(r.TotalPoints()) / float64(maxPoints)
}

// PercentScoreString returns the percent score formatted to two decimal
// places with a "%" suffix, e.g. "83.33%".
func (r *Review) PercentScoreString() string {
	return fmt.Sprintf("%.2f%%", r.PercentScore())
}
