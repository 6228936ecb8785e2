package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/utils"
)

// webhookPayload is the JSON body POSTed for every alert.
type webhookPayload struct {
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

type webhookChannel struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewWebhookChannel constructs a [NotificationChannel] that POSTs a JSON
// payload to cfg.WebhookURL. Every request is bounded by cfg.SendTimeout.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewWebhookChannel(cfg config.Alerts, logger *logger.Logger) (NotificationChannel, error) {
	endpoint, err := normalizeURL(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: webhook url: %w", ErrInvalidChannelConfig, err)
	}

	return &webhookChannel{
		client: utils.NewHTTPClient(cfg.SendTimeout),
		url:    endpoint,
		logger: logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// SendAlert implements [NotificationChannel].
func (w *webhookChannel) SendAlert(ctx context.Context, recipient, message string) error {
	log := logger.FromContext(ctx)

	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{
			Recipient: recipient,
			Message:   message,
			SentAt:    time.Now().UTC(),
		}).
		Post(w.url)
	if err != nil {
		log.Debug().Err(err).Str("func", "*webhookChannel.SendAlert").Msg("webhook request failed")
		return fmt.Errorf("%w: %w", ErrChannelDelivery, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Debug().Err(err).Str("func", "*webhookChannel.SendAlert").Int("status", resp.StatusCode()).Msg("webhook rejected alert")
		return err
	}

	log.Debug().Str("func", "*webhookChannel.SendAlert").Str("recipient", recipient).Msg("alert delivered")
	return nil
}
