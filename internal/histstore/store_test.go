package histstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/qams/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a sqlite-backed store in a temp directory.
func newSQLiteStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	impl, ok := store.(*HistoryStoreImpl)
	require.True(t, ok)
	return impl
}

// sampleRun returns a run with criterion rows for store tests.
func sampleRun(runID int64, createdAt time.Time) (schema.RunRecord, []schema.CriterionRecord) {
	params := `{"threshold":80}`
	run := schema.RunRecord{
		RunID:         runID,
		Scorecard:     "support",
		CriteriaCount: 2,
		AnsweredCount: 2,
		TotalPoints:   3,
		MaxPoints:     4,
		Percent:       75,
		Passed:        false,
		CreatedAt:     createdAt,
		ConfigParams:  &params,
	}
	criteria := []schema.CriterionRecord{
		{RunID: runID, Position: 1, Label: "Greeting", Selected: "YES", Answered: true, Points: 1, Comment: "warm opener"},
		{RunID: runID, Position: 2, Label: "Resolution", Selected: "MOSTLY", Answered: true, Points: 2},
	}
	return run, criteria
}

// TestHistoryStoreRecordAndFetch checks the SQLite round trip for runs and
// criterion results.
func TestHistoryStoreRecordAndFetch(t *testing.T) {
	store := newSQLiteStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	run, criteria := sampleRun(1, now)
	require.NoError(t, store.RecordRun(run, criteria))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "support", runs[0].Scorecard)
	assert.Equal(t, 3, runs[0].TotalPoints)
	assert.InDelta(t, 75, runs[0].Percent, 0.001)
	assert.Equal(t, now, runs[0].CreatedAt)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Equal(t, `{"threshold":80}`, *runs[0].ConfigParams)

	results, err := store.GetAllCriterionResults()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Greeting", results[0].Label)
	assert.True(t, results[0].Answered)
	assert.Equal(t, "warm opener", results[0].Comment)
}

// TestHistoryStoreOrdering checks newest-first ordering of runs.
func TestHistoryStoreOrdering(t *testing.T) {
	store := newSQLiteStore(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i := int64(1); i <= 3; i++ {
		run, criteria := sampleRun(i, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.RecordRun(run, criteria))
	}

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(3), runs[0].RunID)
	assert.Equal(t, int64(1), runs[2].RunID)
}

// TestHistoryStoreStatusAndClear checks status counters and the clear
// operation.
func TestHistoryStoreStatusAndClear(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.NotEmpty(t, status.Location)
	assert.Equal(t, int64(0), status.RunCount)
	assert.Nil(t, status.LastRunAt)

	now := time.Now().UTC().Truncate(time.Second)
	run, criteria := sampleRun(7, now)
	require.NoError(t, store.RecordRun(run, criteria))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.RunCount)
	require.NotNil(t, status.LastRunAt)
	assert.Equal(t, now, *status.LastRunAt)

	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.RunCount)

	results, err := store.GetAllCriterionResults()
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestHistoryStoreDuplicateRunID ensures the primary key rejects duplicate
// run IDs without corrupting existing data.
func TestHistoryStoreDuplicateRunID(t *testing.T) {
	store := newSQLiteStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	run, criteria := sampleRun(9, now)
	require.NoError(t, store.RecordRun(run, criteria))
	assert.Error(t, store.RecordRun(run, criteria))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

// TestNoneBackendIsNoOp checks that the disabled backend accepts every
// operation without touching a database.
func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	run, criteria := sampleRun(1, time.Now())
	assert.NoError(t, store.RecordRun(run, criteria))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

// TestNewHistoryStoreUnsupportedBackend checks the error path for unknown
// backends.
func TestNewHistoryStoreUnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

// TestMigrateHistorySQLite runs the embedded migrations up and back down
// against a fresh SQLite file.
func TestMigrateHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	// Re-running against the migrated DB is a no-op, not an error.
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	// Roll everything back.
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))
}
