package cmd

import (
	"github.com/huangsam/qams/core"
	"github.com/huangsam/qams/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD quality gating.
var checkCmd = &cobra.Command{
	Use:   "check <template>",
	Short: "Enforce a review quality gate (fails build on violations)",
	Long: `Score a review and fail with a non-zero exit code when it misses the bar.

The gate fails when any fatal option is selected, or when the percent score
falls below the threshold. Unanswered criteria are reported but do not fail
the gate by themselves.

Use cases:
- Pipeline gates on QA review outcomes
- Enforcing a minimum review score before release
- Surfacing fatal compliance violations automatically

Examples:
  # Gate at the default threshold
  qams check scorecard.csv --select "YES,MOSTLY,NO"

  # Stricter gate for release branches
  qams check scorecard.csv --select "YES,YES,YES" --threshold 90`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// ExecuteCheck exits non-zero itself when the gate fails
		if err := core.ExecuteCheck(cfg); err != nil {
			contract.LogFatal("Quality check failed", err)
		}
	},
}
