package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or a non-positive operation timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown password hash algorithm).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAlertConfigs indicates invalid notification settings
	// (for example, the webhook channel without a webhook URL).
	ErrInvalidAlertConfigs = errors.New("invalid alert configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
