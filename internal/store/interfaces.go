package store

import (
	"context"

	"github.com/MKhiriev/warehouse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user credentials. Usernames are unique; the unique
// constraint of the users table is the only existence check.
type UserRepository interface {
	// CreateUser inserts user. It returns [ErrUserAlreadyExists] when the
	// username is taken.
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByUsername returns the stored hash and salt for username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// InventoryRepository persists inventory items keyed by SKU.
type InventoryRepository interface {
	// UpsertItem inserts item or fully replaces the row with the same SKU.
	UpsertItem(ctx context.Context, item models.InventoryItem) error
	// DeleteItem removes the row with sku and reports whether one existed.
	DeleteItem(ctx context.Context, sku string) (bool, error)
	// ListAllItems returns every row in storage order.
	ListAllItems(ctx context.Context) ([]models.InventoryItem, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique or primary key
	// constraint violation.
	IsUniqueViolation(err error) bool
}
