// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// warehouse-keeper application. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// password hashing scheme.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Inventory holds business rules applied to inventory mutations.
	Inventory Inventory `envPrefix:"INVENTORY_"`

	// Alerts holds the notification channel used for out-of-stock alerts.
	Alerts Alerts `envPrefix:"ALERTS_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHashAlgorithm selects the password digest scheme:
	// "sha256" (salted SHA-256) or "argon2id".
	// Env: APP_PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database. Values starting with
	// "postgres://" or "postgresql://" use PostgreSQL; anything else is
	// treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// OperationTimeout bounds every single store operation.
	// Env: STORAGE_DB_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
}

// Inventory holds business rules for inventory mutations.
type Inventory struct {
	// RejectNegative makes upserts with a negative quantity fail with an
	// invalid input error. Negative quantities are accepted by default.
	// Env: INVENTORY_REJECT_NEGATIVE
	RejectNegative bool `env:"REJECT_NEGATIVE"`
}

// Alerts holds notification channel settings.
type Alerts struct {
	// Channel is the notification transport: "log" or "webhook".
	// Env: ALERTS_CHANNEL
	Channel string `env:"CHANNEL"`

	// Recipient is the address the alert is sent to (phone number, e-mail,
	// topic), interpreted by the channel.
	// Env: ALERTS_RECIPIENT
	Recipient string `env:"RECIPIENT"`

	// WebhookURL is the endpoint used by the "webhook" channel.
	// Env: ALERTS_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// SendTimeout bounds a single alert delivery attempt.
	// Env: ALERTS_SEND_TIMEOUT
	SendTimeout time.Duration `env:"SEND_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RefreshInterval is how often the cache refresh worker reloads the
	// inventory from the store.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags registered with [RegisterFlags] on fs
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
