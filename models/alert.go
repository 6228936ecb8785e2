// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Alert is a single out-of-stock notification handed to a notification
// channel. It is never persisted.
type Alert struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Recipient   string    `json:"recipient"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
