package core

import (
	"fmt"
	"os"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
)

// ExecuteCheck runs the check command for CI/CD gating. It scores the
// review and exits non-zero when a fatal option is selected or the percent
// score falls below the configured threshold.
func ExecuteCheck(cfg *contract.Config) error {
	review, err := LoadReview(cfg.TemplatePath)
	if err != nil {
		return err
	}
	if err := ApplyAnswers(review, cfg); err != nil {
		return err
	}

	result := BuildCheckResult(review, cfg.Scorecard, cfg.Threshold)
	printCheckResult(&result, cfg)

	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

// printCheckResult prints the check result in a concise format suitable
// for CI/CD logs.
func printCheckResult(result *schema.CheckResult, cfg *contract.Config) {
	fmt.Println("Review Check Results:")

	labels := []string{"Scorecard:", "Score:", "Threshold:", "Grade:"}
	grade := contract.GetPlainLabel(result.Percent, result.Fatal)
	if cfg.UseColors {
		grade = contract.GetColorLabel(result.Percent, result.Fatal)
	}
	values := []any{
		result.Scorecard,
		fmt.Sprintf("%s (%d/%d points)", result.PercentString, result.TotalPoints, result.MaxPoints),
		fmt.Sprintf("%.2f%%", result.Threshold),
		grade,
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	if len(result.Unanswered) > 0 {
		fmt.Printf("Unanswered criteria (%d):\n", len(result.Unanswered))
		for _, label := range result.Unanswered {
			fmt.Printf("  - %s\n", label)
		}
		fmt.Println()
	}

	if result.Passed {
		fmt.Println("PASS: review meets the quality threshold")
		return
	}

	if result.Fatal {
		fmt.Printf("FAIL: fatal option selected on %d criterion(s):\n", len(result.FatalCriteria))
		for _, label := range result.FatalCriteria {
			fmt.Printf("  - %s\n", label)
		}
		return
	}
	fmt.Printf("FAIL: score %s is below threshold %.2f%%\n", result.PercentString, result.Threshold)
}
