package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Review grade label constants.
const (
	FailedValue    = "Failed"    // Fatal option selected
	ExcellentValue = "Excellent" // Excellent grade
	GoodValue      = "Good"      // Good grade
	FairValue      = "Fair"      // Fair grade
	PoorValue      = "Poor"      // Poor grade
)

// Color variables for console output.
var (
	FailedColor    = color.New(color.FgRed, color.Bold)   // failedColor marks a fatal review.
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks top scores.
	GoodColor      = color.New(color.FgCyan)              // goodColor marks healthy scores.
	FairColor      = color.New(color.FgYellow)            // fairColor marks borderline scores.
	PoorColor      = color.New(color.FgMagenta)           // poorColor marks failing scores.
)

// GetPlainLabel returns a plain text grade for a review's percent score.
// A fatal selection overrides the bands entirely. This is the core logic
// used for CSV, JSON, and table printing.
func GetPlainLabel(percent float64, fatal bool) string {
	if fatal {
		return FailedValue
	}
	switch {
	case percent >= 90:
		return ExcellentValue
	case percent >= 75:
		return GoodValue
	case percent >= 50:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored grade label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(percent float64, fatal bool) string {
	text := GetPlainLabel(percent, fatal)

	switch text {
	case FailedValue:
		return FailedColor.Sprint(text)
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for review
// history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".qams_history.db"
	}
	return filepath.Join(homeDir, ".qams_history.db")
}

// TruncateLabel truncates a criterion label to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for the ellipsis
// and at least one character of content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
