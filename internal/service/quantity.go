package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseQuantity converts user-supplied text into a quantity. Non-numeric
// input and values outside the signed 32-bit range fail with
// [ErrInvalidInput].
func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q: %w", ErrInvalidInput, raw, err)
	}

	return int(quantity), nil
}
