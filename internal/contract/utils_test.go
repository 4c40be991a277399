package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel checks the grade bands and the fatal override.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		fatal    bool
		expected string
	}{
		{name: "excellent at boundary", percent: 90, expected: ExcellentValue},
		{name: "perfect score", percent: 100, expected: ExcellentValue},
		{name: "good at boundary", percent: 75, expected: GoodValue},
		{name: "fair at boundary", percent: 50, expected: FairValue},
		{name: "poor below fair", percent: 49.99, expected: PoorValue},
		{name: "zero is poor", percent: 0, expected: PoorValue},
		{name: "fatal overrides a high score", percent: 95, fatal: true, expected: FailedValue},
		{name: "fatal overrides zero", percent: 0, fatal: true, expected: FailedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.percent, tt.fatal))
		})
	}
}

// TestTruncateLabel checks ellipsis truncation edge cases.
func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		maxWidth int
		expected string
	}{
		{name: "short label unchanged", label: "Greeting", maxWidth: 20, expected: "Greeting"},
		{name: "long label truncated", label: "Did the agent resolve the issue?", maxWidth: 15, expected: "Did the agen..."},
		{name: "exact width unchanged", label: "12345", maxWidth: 5, expected: "12345"},
		{name: "tiny width unchanged", label: "123456", maxWidth: 3, expected: "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLabel(tt.label, tt.maxWidth))
		})
	}
}
