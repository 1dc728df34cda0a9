package store

import "errors"

// Sentinel errors returned by the key-value tiers and collections. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedCollection is returned when a stored collection is not a
	// valid JSON array of the expected record type.
	ErrCorruptedCollection = errors.New("stored collection is corrupted")

	// ErrUnknownDriver is returned when the configured durable driver is not
	// one of the supported backends.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrStoreUnavailable is returned when the database connection is lost
	// or refused.
	ErrStoreUnavailable = errors.New("storage is unavailable")

	// ErrStoreNotMigrated is returned when the key-value table is missing.
	ErrStoreNotMigrated = errors.New("storage schema is not migrated")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
