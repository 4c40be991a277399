package cmd

import (
	"github.com/huangsam/qams/core"
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/outwriter"
	"github.com/spf13/cobra"
)

// scoreCmd scores a review against a scorecard template.
var scoreCmd = &cobra.Command{
	Use:   "score <template>",
	Short: "Score a review by applying answers to a scorecard template.",
	Long: `Apply answers to a scorecard template and print the scored review.

Each --select token answers one criterion, in template order. A token is an
option label (case-insensitive) or a zero-based option index; '-' leaves a
criterion unanswered. Selecting a fatal option drives the whole review to
zero regardless of other answers.

Scored runs are recorded in the history store, so trends are queryable
later with 'qams history'.

Examples:
  # Answer by label
  qams score scorecard.csv --select "YES,MOSTLY,NO"

  # Mix labels, indexes and unanswered criteria
  qams score scorecard.csv --select "YES,1,-"

  # Attach comments to criteria by position
  qams score scorecard.csv --select "YES,NO" --comment "2:customer was not greeted"

  # Export the scored review for record keeping
  qams score scorecard.csv --select "YES,NO" --export-review review.csv

  # Machine-readable scores
  qams score scorecard.csv --select "YES,NO" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(cfg, storeManager, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot score review", err)
		}
	},
}
