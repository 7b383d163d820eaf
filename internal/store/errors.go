package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrKeyNotFound is returned when a key-value lookup matches no row.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// local database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("error scanning row")

	// ErrDecodingState is returned when the stored snapshot cannot be
	// parsed back into [models.AppState]; the local database is corrupt.
	ErrDecodingState = errors.New("error decoding stored state")
)
