package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and parseFlags.
const (
	flagConfig           = "config"
	flagDSN              = "dsn"
	flagOperationTimeout = "operation-timeout"
	flagLogLevel         = "log-level"
	flagHashAlgorithm    = "hash-algorithm"
	flagRejectNegative   = "reject-negative"
	flagAlertChannel     = "alert-channel"
	flagAlertRecipient   = "alert-recipient"
	flagWebhookURL       = "webhook-url"
	flagAlertTimeout     = "alert-timeout"
	flagRefreshInterval  = "refresh-interval"
)

// RegisterFlags adds all configuration flags to fs.
//
// Flags:
//
//	-c/--config            json file path with configs
//	-d/--dsn               database DSN (postgres URL or sqlite file path)
//	--operation-timeout    single store operation timeout (e.g. "5s")
//	--log-level            log level (debug, info, warn, error)
//	--hash-algorithm       password hash scheme (sha256, argon2id)
//	--reject-negative      reject negative item quantities
//	--alert-channel        notification channel (log, webhook)
//	--alert-recipient      alert recipient address
//	--webhook-url          webhook endpoint for the webhook channel
//	--alert-timeout        single alert delivery timeout
//	--refresh-interval     cache refresh interval for watch mode
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.StringP(flagDSN, "d", "", "Database DSN")
	fs.Duration(flagOperationTimeout, 0, "Store operation timeout (e.g., 5s)")
	fs.String(flagLogLevel, "", "Log level")
	fs.String(flagHashAlgorithm, "", "Password hash algorithm (sha256, argon2id)")
	fs.Bool(flagRejectNegative, false, "Reject negative item quantities")
	fs.String(flagAlertChannel, "", "Alert channel (log, webhook)")
	fs.String(flagAlertRecipient, "", "Alert recipient")
	fs.String(flagWebhookURL, "", "Webhook URL for the webhook alert channel")
	fs.Duration(flagAlertTimeout, 0, "Alert delivery timeout (e.g., 10s)")
	fs.Duration(flagRefreshInterval, 0, "Cache refresh interval (e.g., 30s)")
}

// parseFlags builds a partial config from the flags of fs that were
// explicitly set. Flags not registered on fs are ignored.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case flagConfig:
			cfg.JSONFilePath, err = fs.GetString(f.Name)
		case flagDSN:
			cfg.Storage.DB.DSN, err = fs.GetString(f.Name)
		case flagOperationTimeout:
			cfg.Storage.DB.OperationTimeout, err = fs.GetDuration(f.Name)
		case flagLogLevel:
			cfg.App.LogLevel, err = fs.GetString(f.Name)
		case flagHashAlgorithm:
			cfg.App.PasswordHashAlgorithm, err = fs.GetString(f.Name)
		case flagRejectNegative:
			cfg.Inventory.RejectNegative, err = fs.GetBool(f.Name)
		case flagAlertChannel:
			cfg.Alerts.Channel, err = fs.GetString(f.Name)
		case flagAlertRecipient:
			cfg.Alerts.Recipient, err = fs.GetString(f.Name)
		case flagWebhookURL:
			cfg.Alerts.WebhookURL, err = fs.GetString(f.Name)
		case flagAlertTimeout:
			cfg.Alerts.SendTimeout, err = fs.GetDuration(f.Name)
		case flagRefreshInterval:
			cfg.Workers.RefreshInterval, err = fs.GetDuration(f.Name)
		}

		if err != nil {
			err = fmt.Errorf("error reading flag --%s: %w", f.Name, err)
		}
	})

	if err != nil {
		return nil, err
	}

	return cfg, nil
}
