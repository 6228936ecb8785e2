package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel              string `json:"log_level"`
		PasswordHashAlgorithm string `json:"password_hash_algorithm"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN              string   `json:"dsn"`
			OperationTimeout Duration `json:"operation_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Inventory struct {
		RejectNegative bool `json:"reject_negative"`
	} `json:"inventory,omitempty"`

	Alerts struct {
		Channel     string   `json:"channel"`
		Recipient   string   `json:"recipient"`
		WebhookURL  string   `json:"webhook_url"`
		SendTimeout Duration `json:"send_timeout"`
	} `json:"alerts,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:              jsonCfg.App.LogLevel,
			PasswordHashAlgorithm: jsonCfg.App.PasswordHashAlgorithm,
		},
		Storage: Storage{
			DB: DB{
				DSN:              jsonCfg.Storage.DB.DSN,
				OperationTimeout: time.Duration(jsonCfg.Storage.DB.OperationTimeout),
			},
		},
		Inventory: Inventory{
			RejectNegative: jsonCfg.Inventory.RejectNegative,
		},
		Alerts: Alerts{
			Channel:     jsonCfg.Alerts.Channel,
			Recipient:   jsonCfg.Alerts.Recipient,
			WebhookURL:  jsonCfg.Alerts.WebhookURL,
			SendTimeout: time.Duration(jsonCfg.Alerts.SendTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
