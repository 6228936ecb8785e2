package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
)

// Storages owns the single database handle and the repositories built on
// it. Close must be called on every exit path.
type Storages struct {
	UserRepository      UserRepository
	InventoryRepository InventoryRepository

	db *DB
}

// NewStorages connects to the backend selected by cfg.DSN, brings the
// schema up to date and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	dialect, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("cannot select database driver")
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.InitializeSchema(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error initializing schema")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		InventoryRepository: NewInventoryRepository(db, log),
		db:                  db,
	}
}

// DB exposes the shared handle for schema maintenance.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
