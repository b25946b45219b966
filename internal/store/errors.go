package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRunNotFound is returned when no run with the requested id exists.
	ErrRunNotFound = errors.New("run was not found")

	// ErrRecordAlreadyExists is returned when a record is saved twice at the
	// same position of the same run.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrRunAlreadyExists is returned when a run id is reused.
	ErrRunAlreadyExists = errors.New("run already exists")

	// ErrDatabaseUnavailable wraps connection-level failures.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
