// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound notification channels used for
// stock alerts.
//
// The primary abstraction is [NotificationChannel], which decouples the
// alert dispatcher from the delivery transport. The package ships an
// HTTP webhook implementation ([NewWebhookChannel]) and a log-only
// implementation ([NewLogChannel]) for local use.
//
// Delivery failures are reported as [ErrChannelDelivery] so that callers can
// use [errors.Is] regardless of transport.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notification_channel_mock.go -package=mock

// NotificationChannel delivers a text message to a recipient. One call is
// one delivery attempt; implementations do not retry.
type NotificationChannel interface {
	// SendAlert delivers message to recipient. It returns an error wrapping
	// [ErrChannelDelivery] when the transport rejects or fails the delivery.
	SendAlert(ctx context.Context, recipient, message string) error
}
