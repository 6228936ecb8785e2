package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	defaultOperationTimeout = 5 * time.Second
	maxRetries              = 2 // 3 attempts in total
	retryBaseDelay          = 50 * time.Millisecond
)

// DialectFromDSN selects the backend from the DSN: postgres:// and
// postgresql:// URLs use PostgreSQL, everything else is an SQLite file.
func DialectFromDSN(dsn string) (Dialect, error) {
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	default:
		return DialectSQLite, nil
	}
}

// DB is the single database handle shared by all repositories.
//
// Every repository call goes through [DB.run], which bounds the call with
// the operation timeout and retries errors the classifier marks retryable.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	operationTimeout   time.Duration
	logger             *logger.Logger
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultOperationTimeout
	}
	return timeout
}

func newDB(conn *sql.DB, dialect Dialect, timeout time.Duration, log *logger.Logger) *DB {
	db := &DB{
		DB:               conn,
		dialect:          dialect,
		operationTimeout: timeoutOrDefault(timeout),
		logger:           log,
	}

	switch dialect {
	case DialectPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}

	return db
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// gooseDialect maps the backend onto the goose dialect name.
func (db *DB) gooseDialect() string {
	if db.dialect == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

// InitializeSchema applies all pending migrations.
func (db *DB) InitializeSchema(ctx context.Context) error {
	return migrations.InitializeSchema(ctx, db.DB, db.gooseDialect())
}

// MigrateSchema moves the schema from oldVersion to newVersion.
func (db *DB) MigrateSchema(ctx context.Context, oldVersion, newVersion int64) error {
	return migrations.MigrateSchema(ctx, db.DB, db.gooseDialect(), oldVersion, newVersion)
}

// SchemaVersion reports the current schema version.
func (db *DB) SchemaVersion(ctx context.Context) (int64, error) {
	return migrations.CurrentVersion(ctx, db.DB, db.gooseDialect())
}

// run executes fn under the operation timeout. Retryable errors are retried
// with exponential backoff; a deadline hit is reported as
// [ErrStorageTimeout].
func (db *DB) run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, db.operationTimeout)
	defer cancel()

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.run").Msg("retrying store operation")
			return retry.RetryableError(err)
		}
		return err
	})

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrStorageTimeout, err)
	}

	return err
}
