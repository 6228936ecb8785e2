package config

import "time"

const (
	// HashAlgorithmSHA256 is salted SHA-256 over salt || password.
	HashAlgorithmSHA256 = "sha256"
	// HashAlgorithmArgon2id is the memory-hard argon2id KDF.
	HashAlgorithmArgon2id = "argon2id"

	// ChannelLog writes alerts to the application log.
	ChannelLog = "log"
	// ChannelWebhook POSTs alerts to an HTTP endpoint.
	ChannelWebhook = "webhook"
)

const (
	defaultDSN              = "warehouse_inventory.db"
	defaultOperationTimeout = 5 * time.Second
	defaultLogLevel         = "info"
	defaultRecipient        = "15551234567"
	defaultSendTimeout      = 10 * time.Second
	defaultRefreshInterval  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:              defaultLogLevel,
			PasswordHashAlgorithm: HashAlgorithmSHA256,
		},
		Storage: Storage{
			DB: DB{
				DSN:              defaultDSN,
				OperationTimeout: defaultOperationTimeout,
			},
		},
		Alerts: Alerts{
			Channel:     ChannelLog,
			Recipient:   defaultRecipient,
			SendTimeout: defaultSendTimeout,
		},
		Workers: Workers{
			RefreshInterval: defaultRefreshInterval,
		},
	}
}
