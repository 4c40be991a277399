package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for review history.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Scorecard CSV format parameters. These are fixed, read-only tokens of the
// flat-text format; there is no quoting or escaping, so labels and comments
// containing them will corrupt the output.
const (
	// CSVRowDelimiter separates rows in scorecard CSV text.
	CSVRowDelimiter = "\n"

	// CSVColDelimiter separates columns in scorecard CSV text.
	CSVColDelimiter = ","

	// CSVExportHeader is the fixed header row of an exported review.
	CSVExportHeader = "Criterion,Selection,Comments"

	// CSVPercentLabel is the row label of the percent score line in an
	// exported review.
	CSVPercentLabel = "Percent Score"
)
