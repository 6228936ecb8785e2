package service

import (
	"context"

	"github.com/MKhiriev/warehouse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and validates user credentials.
type AuthService interface {
	// RegisterUser stores a new salted digest for creds. It returns
	// [ErrDuplicateUser] when the username is taken.
	RegisterUser(ctx context.Context, creds models.Credentials) error
	// ValidateUser reports whether creds match a registered user. Unknown
	// users and wrong passwords both yield false without an error.
	ValidateUser(ctx context.Context, creds models.Credentials) (bool, error)
}

// InventoryService mutates the inventory through the store and serves reads
// from the in-memory cache.
type InventoryService interface {
	UpsertItem(ctx context.Context, req models.UpsertItemRequest) error
	DeleteItem(ctx context.Context, req models.DeleteItemRequest) (bool, error)
	ListItems(ctx context.Context) []models.InventoryItem
	FilterItems(ctx context.Context, query string) []models.InventoryItem
	// Load fills the cache from the store.
	Load(ctx context.Context) error
	// Refresh reloads the cache from the store, picking up changes made by
	// other processes.
	Refresh(ctx context.Context) error
}

// AlertDispatcher is notified after every successful upsert.
type AlertDispatcher interface {
	OnQuantityChanged(ctx context.Context, sku, description string, newQuantity int) bool
}
