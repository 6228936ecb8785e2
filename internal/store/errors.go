package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUserAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup by username matches no row.
	ErrUserNotFound = errors.New("no user was found")
)

var (
	// ErrStorage is the umbrella error for every failure of the underlying
	// database. All low-level errors below wrap it.
	ErrStorage = errors.New("storage error")

	// ErrStorageTimeout is returned when a store operation exceeds the
	// configured operation timeout. It is also an [ErrStorage].
	ErrStorageTimeout = fmt.Errorf("%w: operation timed out", ErrStorage)

	// ErrUnsupportedDSN is returned when no driver can be selected for a DSN.
	ErrUnsupportedDSN = errors.New("unsupported dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// storageError wraps err with [ErrStorage] and the operation kind. Timeouts
// already carry [ErrStorageTimeout] and are returned unchanged.
func storageError(kind, err error) error {
	if errors.Is(err, ErrStorageTimeout) {
		return err
	}
	return fmt.Errorf("%w: %w: %w", ErrStorage, kind, err)
}
