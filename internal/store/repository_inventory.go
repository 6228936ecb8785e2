package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/models"
)

const upsertInventorySuffix = "ON CONFLICT (sku) DO UPDATE SET description = excluded.description, quantity = excluded.quantity"

// inventoryRepository is the SQL implementation of [InventoryRepository]
// over the "inventory" table. Each method is a single statement, so per-SKU
// mutations are atomic on both backends.
type inventoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInventoryRepository constructs an [InventoryRepository].
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertItem inserts item, or replaces description and quantity of the row
// with the same SKU. Last write wins.
func (r *inventoryRepository) UpsertItem(ctx context.Context, item models.InventoryItem) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(item.TableName()).
		Columns("sku", "description", "quantity").
		Values(item.SKU, item.Description, item.Quantity).
		Suffix(upsertInventorySuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.UpsertItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	err = r.db.run(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*inventoryRepository.UpsertItem").
			Str("sku", item.SKU).
			Msg("error upserting item")
		return storageError(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteItem removes the row with sku. Deleting a missing SKU is not an
// error; the result is false.
func (r *inventoryRepository) DeleteItem(ctx context.Context, sku string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.InventoryItem{}.TableName()).
		Where(sq.Eq{"sku": sku}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.DeleteItem").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.run(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*inventoryRepository.DeleteItem").
			Str("sku", sku).
			Msg("error deleting item")
		return false, storageError(ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ListAllItems returns every row. Order is whatever the backend yields.
func (r *inventoryRepository) ListAllItems(ctx context.Context) ([]models.InventoryItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("sku", "description", "quantity").
		From(models.InventoryItem{}.TableName()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.ListAllItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var items []models.InventoryItem
	err = r.db.run(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		// reset on retry
		items = make([]models.InventoryItem, 0, 64)
		for rows.Next() {
			var item models.InventoryItem
			if err := rows.Scan(&item.SKU, &item.Description, &item.Quantity); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, item)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.ListAllItems").Msg("error listing items")
		return nil, storageError(ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*inventoryRepository.ListAllItems").Int("count", len(items)).Msg("items listed")
	return items, nil
}
