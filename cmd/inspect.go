package cmd

import (
	"github.com/huangsam/qams/core"
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/outwriter"
	"github.com/spf13/cobra"
)

// inspectCmd describes a scorecard template without scoring anything.
var inspectCmd = &cobra.Command{
	Use:   "inspect <template>",
	Short: "Show the criteria, options and attainable points of a scorecard template.",
	Long: `Parse a scorecard template and describe its structure.

Shows each criterion with its options, the serialized score of every option
(points or FATAL) and the attainable points per criterion and overall.

Use this to:
- Verify a template parses the way you expect
- See which options are fatal before scoring a review
- Check attainable points after editing a template

Examples:
  # Describe a template as a table
  qams inspect scorecard.csv

  # Machine-readable template description
  qams inspect scorecard.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInspect(cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot inspect scorecard", err)
		}
	},
}
