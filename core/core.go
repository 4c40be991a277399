// Package core orchestrates scorecard operations: loading templates,
// applying answers, producing results and recording review history.
package core

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/outwriter"
	"github.com/huangsam/qams/schema"
)

// ExecuteInspect parses a scorecard template and prints its criteria,
// options and attainable points.
func ExecuteInspect(cfg *contract.Config, ow *outwriter.OutWriter) error {
	review, err := LoadReview(cfg.TemplatePath)
	if err != nil {
		return err
	}
	result := BuildInspectResult(review, cfg.Scorecard)
	return ow.WriteInspect(result, cfg)
}

// ExecuteScore builds a review from a template, applies the configured
// answers, prints the scores and records the run in the history store.
func ExecuteScore(cfg *contract.Config, mgr contract.StoreManager, ow *outwriter.OutWriter) error {
	review, err := LoadReview(cfg.TemplatePath)
	if err != nil {
		return err
	}
	if err := ApplyAnswers(review, cfg); err != nil {
		return err
	}

	result := BuildReviewResult(review, cfg.Scorecard)

	if cfg.ExportReview != "" {
		if err := os.WriteFile(cfg.ExportReview, []byte(review.ToCSV()), 0o644); err != nil {
			return fmt.Errorf("failed to export review CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote review CSV to %s\n", cfg.ExportReview)
	}

	// History recording is best effort: a broken store must not hide the
	// scores the user asked for.
	if err := RecordRun(result, cfg, mgr); err != nil {
		contract.LogWarn("could not record review run", err)
	}

	return ow.WriteReview(result, cfg)
}

// RecordRun stores a scored review run in the history store.
func RecordRun(result schema.ReviewResult, cfg *contract.Config, mgr contract.StoreManager) error {
	if mgr == nil {
		return nil
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return nil
	}

	// Run IDs are wall-clock based to stay portable across backends.
	runID := time.Now().UnixNano()

	params, err := json.Marshal(map[string]any{
		"scorecard": cfg.Scorecard,
		"template":  cfg.TemplatePath,
		"threshold": cfg.Threshold,
	})
	if err != nil {
		return fmt.Errorf("failed to encode run parameters: %w", err)
	}
	paramsStr := string(params)

	run := schema.RunRecord{
		RunID:         runID,
		Scorecard:     result.Scorecard,
		CriteriaCount: len(result.Criteria),
		AnsweredCount: result.AnsweredCount,
		TotalPoints:   result.TotalPoints,
		MaxPoints:     result.MaxPoints,
		Percent:       result.Percent,
		Fatal:         result.Fatal,
		Passed:        !result.Fatal && result.Percent >= cfg.Threshold,
		CreatedAt:     time.Now().UTC(),
		ConfigParams:  &paramsStr,
	}

	criteria := make([]schema.CriterionRecord, 0, len(result.Criteria))
	for _, cr := range result.Criteria {
		criteria = append(criteria, schema.CriterionRecord{
			RunID:    runID,
			Position: cr.Position,
			Label:    cr.Label,
			Selected: cr.Selected,
			Answered: cr.Answered,
			Fatal:    cr.Fatal,
			Points:   cr.Points,
			Comment:  cr.Comment,
		})
	}

	return store.RecordRun(run, criteria)
}
