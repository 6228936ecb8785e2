package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptySKU           = errors.New("sku is required")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrQuantityOutOfRange = errors.New("quantity is out of range")
)
