package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/warehouse-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// Passing no fields validates every field of the value.
const (
	// FieldUsername targets Credentials.Username.
	FieldUsername = "username"

	// FieldPassword targets Credentials.Password.
	FieldPassword = "password"

	// FieldSKU targets the SKU of item commands.
	FieldSKU = "sku"

	// FieldQuantity targets UpsertItemRequest.Quantity. Values must fit the
	// 32-bit INTEGER column; negative values are only rejected when the
	// validator was built with rejectNegative.
	FieldQuantity = "quantity"
)

// InventoryValidator validates the commands accepted by the auth and
// inventory services.
type InventoryValidator struct {
	rejectNegative bool
}

// NewInventoryValidator constructs a [Validator]. With rejectNegative set,
// upserts with a quantity below zero fail with [ErrNegativeQuantity].
func NewInventoryValidator(rejectNegative bool) Validator {
	return &InventoryValidator{rejectNegative: rejectNegative}
}

// Validate implements [Validator].
func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.UpsertItemRequest:
		return v.validateUpsertItemRequest(ctx, value, fields...)
	case *models.UpsertItemRequest:
		return v.validateUpsertItemRequest(ctx, *value, fields...)

	case models.DeleteItemRequest:
		return v.validateDeleteItemRequest(ctx, value, fields...)
	case *models.DeleteItemRequest:
		return v.validateDeleteItemRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InventoryValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateUpsertItemRequest(_ context.Context, request models.UpsertItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSKU, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldSKU:
			if strings.TrimSpace(request.SKU) == "" {
				return ErrEmptySKU
			}
		case FieldQuantity:
			if request.Quantity < math.MinInt32 || request.Quantity > math.MaxInt32 {
				return ErrQuantityOutOfRange
			}
			if v.rejectNegative && request.Quantity < 0 {
				return ErrNegativeQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateDeleteItemRequest(_ context.Context, request models.DeleteItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSKU}
	}

	for _, f := range fields {
		switch f {
		case FieldSKU:
			if strings.TrimSpace(request.SKU) == "" {
				return ErrEmptySKU
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
