// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteInspect prints a scorecard template description using the configured output format.
func (ow *OutWriter) WriteInspect(result schema.InspectResult, cfg *contract.Config) error {
	return PrintInspectResult(result, cfg)
}

// WriteReview prints scored review results using the configured output format.
func (ow *OutWriter) WriteReview(result schema.ReviewResult, cfg *contract.Config) error {
	return PrintReviewResult(result, cfg)
}

// GetMaxTableLabelWidth calculates the maximum width for criterion labels
// in table output based on terminal width and table configuration.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for position, selection, points and comment columns
	// with borders and padding.
	baseWidth := 45

	maxLabelWidth := termWidth - baseWidth
	if maxLabelWidth < 20 {
		maxLabelWidth = 20 // Minimum usable width for a criterion label
	}
	return maxLabelWidth
}
