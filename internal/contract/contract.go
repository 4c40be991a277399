// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/qams/schema"

// HistoryStore defines the interface for review run tracking.
// This allows mocking the store for testing.
type HistoryStore interface {
	// RecordRun stores a scored review run with its per-criterion results
	RecordRun(run schema.RunRecord, criteria []schema.CriterionRecord) error

	// GetAllRuns returns every recorded review run, newest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllCriterionResults returns every recorded per-criterion result
	GetAllCriterionResults() ([]schema.CriterionRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Clear removes all recorded runs and criterion results
	Clear() error

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for accessing the history store.
type StoreManager interface {
	GetHistoryStore() HistoryStore
}
