package histstore

import (
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
)

// MockHistoryStore is an in-memory HistoryStore for testing.
type MockHistoryStore struct {
	Runs      []schema.RunRecord
	Criteria  []schema.CriterionRecord
	RecordErr error
	Cleared   bool
	Closed    bool
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordRun captures the run and criterion records.
func (ms *MockHistoryStore) RecordRun(run schema.RunRecord, criteria []schema.CriterionRecord) error {
	if ms.RecordErr != nil {
		return ms.RecordErr
	}
	ms.Runs = append(ms.Runs, run)
	ms.Criteria = append(ms.Criteria, criteria...)
	return nil
}

// GetAllRuns returns the captured runs.
func (ms *MockHistoryStore) GetAllRuns() ([]schema.RunRecord, error) {
	return ms.Runs, nil
}

// GetAllCriterionResults returns the captured criterion records.
func (ms *MockHistoryStore) GetAllCriterionResults() ([]schema.CriterionRecord, error) {
	return ms.Criteria, nil
}

// GetStatus reports an always-connected mock backend.
func (ms *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	return schema.HistoryStatus{
		Backend:   "mock",
		Connected: true,
		RunCount:  int64(len(ms.Runs)),
	}, nil
}

// Clear drops the captured records.
func (ms *MockHistoryStore) Clear() error {
	ms.Runs = nil
	ms.Criteria = nil
	ms.Cleared = true
	return nil
}

// Close marks the store closed.
func (ms *MockHistoryStore) Close() error {
	ms.Closed = true
	return nil
}

// MockStoreManager wraps a MockHistoryStore as a StoreManager.
type MockStoreManager struct {
	Store contract.HistoryStore
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetHistoryStore returns the wrapped store.
func (mm *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	return mm.Store
}
