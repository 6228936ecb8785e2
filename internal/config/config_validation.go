// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.OperationTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	switch cfg.App.PasswordHashAlgorithm {
	case HashAlgorithmSHA256, HashAlgorithmArgon2id:
	default:
		return fmt.Errorf("%w: unknown password hash algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	}

	switch cfg.Alerts.Channel {
	case ChannelLog:
	case ChannelWebhook:
		if cfg.Alerts.WebhookURL == "" {
			return fmt.Errorf("%w: webhook channel requires a webhook url", ErrInvalidAlertConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidAlertConfigs, cfg.Alerts.Channel)
	}

	if cfg.Alerts.SendTimeout <= 0 {
		return ErrInvalidAlertConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
