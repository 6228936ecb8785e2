// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package alert turns stock levels that dropped to zero or below into
// notifications. The dispatcher keeps no state between calls apart from the
// set of sends still in flight.
package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/adapter"
	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/utils"
	"github.com/MKhiriev/warehouse-keeper/models"
)

const (
	messageTemplate    = "Alert: SKU %s - %s has reached zero items."
	defaultSendTimeout = 10 * time.Second
)

// ErrorHandler receives alerts whose delivery failed. It runs on the send
// goroutine.
type ErrorHandler func(alert models.Alert, err error)

// Option configures a [Dispatcher].
type Option func(*Dispatcher)

// WithErrorHandler registers h for failed deliveries.
func WithErrorHandler(h ErrorHandler) Option {
	return func(d *Dispatcher) {
		d.onError = h
	}
}

// WithClock overrides the time source used for Alert.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// Dispatcher submits one notification per qualifying quantity change.
// Delivery is fire-and-forget: it never blocks the caller and a failure is
// only logged and reported to the [ErrorHandler].
type Dispatcher struct {
	channel     adapter.NotificationChannel
	recipient   string
	sendTimeout time.Duration

	onError ErrorHandler
	ids     *utils.UUIDGenerator
	now     func() time.Time

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewDispatcher constructs a [Dispatcher] sending through channel to
// cfg.Recipient.
func NewDispatcher(channel adapter.NotificationChannel, cfg config.Alerts, logger *logger.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		channel:     channel,
		recipient:   cfg.Recipient,
		sendTimeout: cfg.SendTimeout,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
	if d.sendTimeout <= 0 {
		d.sendTimeout = defaultSendTimeout
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// FormatMessage renders the alert text for an item.
func FormatMessage(sku, description string) string {
	return fmt.Sprintf(messageTemplate, sku, description)
}

// OnQuantityChanged must be called after a successful upsert. When
// newQuantity is zero or negative it starts exactly one delivery attempt and
// returns true; otherwise it does nothing and returns false.
//
// The send outlives ctx cancellation and is bounded by the configured send
// timeout instead.
func (d *Dispatcher) OnQuantityChanged(ctx context.Context, sku, description string, newQuantity int) bool {
	if newQuantity > 0 {
		return false
	}

	alert := models.Alert{
		ID:          d.ids.Generate(),
		SKU:         sku,
		Description: description,
		Quantity:    newQuantity,
		Recipient:   d.recipient,
		Message:     FormatMessage(sku, description),
		CreatedAt:   d.now().UTC(),
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("func", "*Dispatcher.OnQuantityChanged").
		Str("alert_id", alert.ID).
		Str("sku", sku).
		Int("quantity", newQuantity).
		Msg("stock reached zero, dispatching alert")

	sendCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.send(sendCtx, alert)
	}()

	return true
}

func (d *Dispatcher) send(ctx context.Context, alert models.Alert) {
	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	log := logger.FromContext(ctx)

	if err := d.channel.SendAlert(ctx, alert.Recipient, alert.Message); err != nil {
		log.Warn().Err(err).
			Str("func", "*Dispatcher.send").
			Str("alert_id", alert.ID).
			Str("sku", alert.SKU).
			Msg("alert delivery failed")

		if d.onError != nil {
			d.onError(alert, err)
		}
		return
	}

	log.Debug().Str("func", "*Dispatcher.send").Str("alert_id", alert.ID).Msg("alert delivered")
}

// Wait blocks until every delivery started so far has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
