package core

import (
	"github.com/huangsam/qams/schema"
)

// BuildInspectResult describes a scorecard template for inspection output.
func BuildInspectResult(review *schema.Review, scorecard string) schema.InspectResult {
	result := schema.InspectResult{
		Scorecard: scorecard,
		Criteria:  make([]schema.CriterionSpec, 0, review.Len()),
		MaxPoints: review.MaxPoints(),
	}

	for i, c := range review.Criteria() {
		spec := schema.CriterionSpec{
			Position:  i + 1,
			Label:     c.Label(),
			Options:   make([]schema.OptionSpec, 0, len(c.Options())),
			MaxPoints: c.MaxPoints(),
		}
		for _, opt := range c.Options() {
			score := opt.Score()
			spec.Options = append(spec.Options, schema.OptionSpec{
				Label:  opt.Label(),
				Score:  score.String(),
				Fatal:  score.IsFatal(),
				Points: score.Points(),
			})
		}
		result.Criteria = append(result.Criteria, spec)
	}

	return result
}

// BuildReviewResult snapshots a review's current scores for output and
// history tracking.
func BuildReviewResult(review *schema.Review, scorecard string) schema.ReviewResult {
	result := schema.ReviewResult{
		Scorecard:     scorecard,
		Criteria:      make([]schema.CriterionResult, 0, review.Len()),
		AnsweredCount: review.AnsweredCount(),
		TotalPoints:   review.TotalPoints(),
		MaxPoints:     review.MaxPoints(),
		Percent:       review.PercentScore(),
		PercentString: review.PercentScoreString(),
		Fatal:         review.HasFatalSelection(),
	}

	for i, c := range review.Criteria() {
		cr := schema.CriterionResult{
			Position:  i + 1,
			Label:     c.Label(),
			MaxPoints: c.MaxPoints(),
			Comment:   c.Comment(),
		}
		if opt, ok := c.Selection(); ok {
			score := opt.Score()
			cr.Selected = opt.Label()
			cr.Answered = true
			cr.Fatal = score.IsFatal()
			cr.Points = score.Points()
		}
		result.Criteria = append(result.Criteria, cr)
	}

	return result
}

// BuildCheckResult evaluates a review against a quality threshold. The gate
// fails when a fatal option is selected or the percent score falls below
// the threshold; unanswered criteria are reported but do not fail the gate
// on their own.
func BuildCheckResult(review *schema.Review, scorecard string, threshold float64) schema.CheckResult {
	result := schema.CheckResult{
		Scorecard:     scorecard,
		Threshold:     threshold,
		Percent:       review.PercentScore(),
		PercentString: review.PercentScoreString(),
		TotalPoints:   review.TotalPoints(),
		MaxPoints:     review.MaxPoints(),
	}

	for _, c := range review.Criteria() {
		score, ok := c.SelectionScore()
		if !ok {
			result.Unanswered = append(result.Unanswered, c.Label())
			continue
		}
		if score.IsFatal() {
			result.Fatal = true
			result.FatalCriteria = append(result.FatalCriteria, c.Label())
		}
	}

	result.Passed = !result.Fatal && result.Percent >= threshold
	return result
}
