package adapter

import "errors"

var (
	// ErrChannelDelivery is returned when a notification could not be
	// delivered.
	ErrChannelDelivery = errors.New("notification delivery failed")

	// ErrInvalidChannelConfig is returned when a channel cannot be built
	// from the configuration.
	ErrInvalidChannelConfig = errors.New("invalid notification channel config")
)
