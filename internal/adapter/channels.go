package adapter

import (
	"fmt"

	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
)

// NewNotificationChannel builds the channel selected by cfg.Channel.
func NewNotificationChannel(cfg config.Alerts, logger *logger.Logger) (NotificationChannel, error) {
	switch cfg.Channel {
	case config.ChannelWebhook:
		return NewWebhookChannel(cfg, logger)
	case config.ChannelLog, "":
		return NewLogChannel(logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidChannelConfig, cfg.Channel)
	}
}
