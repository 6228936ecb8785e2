package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"connection does not exist", pgError(pgerrcode.ConnectionDoesNotExist), Retryable},
		{"sqlclient unable to establish connection", pgError(pgerrcode.SQLClientUnableToEstablishSQLConnection), Retryable},
		{"transaction integrity constraint violation", pgError(pgerrcode.TransactionIntegrityConstraintViolation), Retryable},
		{"statement timeout is not retried", pgError(pgerrcode.QueryCanceled), NonRetryable},
		{"admin shutdown is not retried", pgError(pgerrcode.AdminShutdown), NonRetryable},
		{"not null violation", pgError(pgerrcode.NotNullViolation), NonRetryable},
		{"wrapped deadlock", fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("duplicate key")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	locked := sqlite3.Error{Code: sqlite3.ErrLocked}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primaryKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", locked)))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(primaryKey))
	assert.False(t, c.IsUniqueViolation(notNull))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
}

func TestStorageError(t *testing.T) {
	err := storageError(ErrExecutingStatement, errors.New("boom"))
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStorageTimeout)

	timeout := fmt.Errorf("%w: deadline", ErrStorageTimeout)
	assert.Equal(t, timeout, storageError(ErrExecutingStatement, timeout))
	assert.ErrorIs(t, ErrStorageTimeout, ErrStorage)
}
