package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFavoriteAlreadyExists is returned when a favorite with the same
	// story id is already stored.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrOfflineStoryNotSaved is returned when inserting a queued story
	// yields no row id.
	ErrOfflineStoryNotSaved = errors.New("offline story was not saved")

	// ErrInvalidSortField is returned for an unknown favorites sort field.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned for a favorites sort order other than
	// asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDatabaseUnavailable is returned when the local database could not
	// be opened or migrated on first use.
	ErrDatabaseUnavailable = errors.New("local database unavailable")

	// ErrEmptyDSN is returned when no database location is configured.
	ErrEmptyDSN = errors.New("empty database dsn")

	// ErrDatabaseClosed is returned for operations after Close.
	ErrDatabaseClosed = errors.New("local database closed")
)
