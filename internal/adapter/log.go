package adapter

import (
	"context"

	"github.com/MKhiriev/warehouse-keeper/internal/logger"
)

type logChannel struct {
	logger *logger.Logger
}

// NewLogChannel constructs a [NotificationChannel] that writes every alert
// to logger at warn level. It never fails.
func NewLogChannel(logger *logger.Logger) NotificationChannel {
	return &logChannel{logger: logger}
}

// SendAlert implements [NotificationChannel].
func (l *logChannel) SendAlert(_ context.Context, recipient, message string) error {
	l.logger.Warn().
		Str("func", "*logChannel.SendAlert").
		Str("recipient", recipient).
		Str("alert", message).
		Msg("stock alert")
	return nil
}
