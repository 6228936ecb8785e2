package service

import (
	"github.com/MKhiriev/warehouse-keeper/internal/cache"
	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/crypto"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/internal/validators"
)

// Services groups the validated services the CLI runs against.
type Services struct {
	AuthService      AuthService
	InventoryService InventoryService
}

// NewServices wires the validated auth and inventory services over
// storages.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, dispatcher AlertDispatcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewInventoryValidator(cfg.Inventory.RejectNegative)

	auth := NewAuthService(storages.UserRepository, hasher, logger)
	inventory := NewInventoryService(storages.InventoryRepository, cache.NewInventoryCache(), dispatcher, logger)

	return &Services{
		AuthService:      NewAuthValidationService(validator).Wrap(auth),
		InventoryService: NewInventoryValidationService(validator).Wrap(inventory),
	}
}
