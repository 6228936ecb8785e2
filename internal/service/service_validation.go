package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warehouse-keeper/internal/validators"
	"github.com/MKhiriev/warehouse-keeper/models"
)

// AuthValidationService rejects malformed credentials before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService constructs the credential validation wrapper.
func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

// RegisterUser rejects an empty username or password with
// [ErrInvalidInput] before delegating.
func (v *AuthValidationService) RegisterUser(ctx context.Context, creds models.Credentials) error {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.RegisterUser(ctx, creds)
}

// ValidateUser rejects an empty username or password as invalid input
// rather than answering false.
func (v *AuthValidationService) ValidateUser(ctx context.Context, creds models.Credentials) (bool, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.ValidateUser(ctx, creds)
}

// Wrap implements [AuthServiceWrapper].
func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// InventoryValidationService rejects malformed item commands before any
// mutation. Reads pass straight through.
type InventoryValidationService struct {
	inner     InventoryService
	validator validators.Validator
}

// NewInventoryValidationService constructs the item validation wrapper.
func NewInventoryValidationService(validator validators.Validator) InventoryServiceWrapper {
	return &InventoryValidationService{validator: validator}
}

// UpsertItem rejects an empty SKU, an out-of-range quantity and, when
// configured, a negative one with [ErrInvalidInput].
func (v *InventoryValidationService) UpsertItem(ctx context.Context, req models.UpsertItemRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.UpsertItem(ctx, req)
}

// DeleteItem rejects an empty SKU with [ErrInvalidInput].
func (v *InventoryValidationService) DeleteItem(ctx context.Context, req models.DeleteItemRequest) (bool, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.DeleteItem(ctx, req)
}

func (v *InventoryValidationService) ListItems(ctx context.Context) []models.InventoryItem {
	return v.inner.ListItems(ctx)
}

func (v *InventoryValidationService) FilterItems(ctx context.Context, query string) []models.InventoryItem {
	return v.inner.FilterItems(ctx, query)
}

func (v *InventoryValidationService) Load(ctx context.Context) error {
	return v.inner.Load(ctx)
}

func (v *InventoryValidationService) Refresh(ctx context.Context) error {
	return v.inner.Refresh(ctx)
}

// Wrap implements [InventoryServiceWrapper].
func (v *InventoryValidationService) Wrap(wrapped InventoryService) InventoryService {
	v.inner = wrapped
	return v
}
