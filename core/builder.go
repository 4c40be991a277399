package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
)

// LoadReview reads a scorecard template file and builds an unanswered review
// from it.
func LoadReview(templatePath string) (*schema.Review, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scorecard template %q: %w", templatePath, err)
	}
	review, err := schema.ParseReviewCSV(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scorecard template %q: %w", templatePath, err)
	}
	return review, nil
}

// ApplyAnswers applies the configured selections and comments to a review.
// Selection tokens come from user input, so a token that doesn't resolve is
// a data error, not a caller bug: it returns an error instead of tripping
// the criterion's fail-fast index guard.
func ApplyAnswers(review *schema.Review, cfg *contract.Config) error {
	// One token per criterion keeps off-by-one answer lists from being
	// scored silently. UnansweredToken covers deliberate gaps.
	if len(cfg.Selections) > 0 && len(cfg.Selections) != review.Len() {
		return fmt.Errorf("%d answers given but the scorecard has %d criteria",
			len(cfg.Selections), review.Len())
	}

	for i, token := range cfg.Selections {
		if token == contract.UnansweredToken {
			continue
		}
		criterion := review.Criteria()[i]
		index, err := ResolveSelection(criterion, token)
		if err != nil {
			return err
		}
		criterion.SetSelection(index)
	}

	for position, text := range cfg.Comments {
		if position > review.Len() {
			return fmt.Errorf("comment position %d is beyond the scorecard's %d criteria",
				position, review.Len())
		}
		review.Criteria()[position-1].SetComment(text)
	}

	return nil
}

// ResolveSelection resolves an answer token against a criterion's options.
// A token is first matched case-insensitively against option labels, then
// interpreted as a zero-based option index.
func ResolveSelection(criterion *schema.Criterion, token string) (int, error) {
	for i, opt := range criterion.Options() {
		if strings.EqualFold(opt.Label(), token) {
			return i, nil
		}
	}

	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("criterion %q has no option %q", criterion.Label(), token)
	}
	if index < 0 || index >= len(criterion.Options()) {
		return 0, fmt.Errorf("option index %d out of range for criterion %q with %d options",
			index, criterion.Label(), len(criterion.Options()))
	}
	return index, nil
}
