// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations owns the database schema. The SQL files are embedded
// into the binary and applied with goose; the same files serve PostgreSQL
// and SQLite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// LatestVersion is the schema version produced by the newest embedded
// migration.
const LatestVersion int64 = 2

var (
	// ErrNilDB is returned when a migration is requested on a nil handle.
	ErrNilDB = errors.New("db is nil")

	// ErrSchemaVersionMismatch is returned by [MigrateSchema] when the
	// version recorded in the database differs from the expected old version.
	ErrSchemaVersionMismatch = errors.New("schema version mismatch")

	// ErrUnknownSchemaVersion is returned when the target version is not
	// produced by any embedded migration.
	ErrUnknownSchemaVersion = errors.New("unknown schema version")
)

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// InitializeSchema applies every pending migration. dialect is a goose
// dialect name ("pgx", "sqlite3").
func InitializeSchema(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setup(ctx, dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateSchema moves the schema from oldVersion to newVersion, upwards or
// downwards. The database must currently be at oldVersion.
func MigrateSchema(ctx context.Context, db *sql.DB, dialect string, oldVersion, newVersion int64) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}
	if newVersion < 0 || newVersion > LatestVersion {
		return fmt.Errorf("%w: %d (latest is %d)", ErrUnknownSchemaVersion, newVersion, LatestVersion)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setup(ctx, dialect); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("migration error reading schema version: %w", err)
	}
	if current != oldVersion {
		return fmt.Errorf("%w: database is at %d, expected %d", ErrSchemaVersionMismatch, current, oldVersion)
	}

	switch {
	case newVersion > oldVersion:
		err = goose.UpToContext(ctx, db, ".", newVersion)
	case newVersion < oldVersion:
		err = goose.DownToContext(ctx, db, ".", newVersion)
	}
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// CurrentVersion reports the schema version recorded in the database.
func CurrentVersion(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setup(ctx, dialect); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migration error reading schema version: %w", err)
	}
	return version, nil
}

func setup(ctx context.Context, dialect string) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: logger.FromContext(ctx)})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return nil
}

// gooseLogger routes goose progress output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug().Str("func", "goose").Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}
