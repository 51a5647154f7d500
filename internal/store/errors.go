package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a professional whose
	// email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProfessionalNotFound is returned when no professional has the given email.
	ErrProfessionalNotFound = errors.New("professional was not found")

	// ErrPatientNotFound is returned when no patient has the given id.
	ErrPatientNotFound = errors.New("patient was not found")

	// ErrSessionValueNotFound is returned by the local session store for a missing key.
	ErrSessionValueNotFound = errors.New("session value was not found")
)

// Low-level database operation errors. They wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
