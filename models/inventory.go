// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InventoryItem is a single stock record keyed by SKU.
// An upsert always replaces the whole record.
type InventoryItem struct {
	// SKU is the stock-keeping unit, the primary key of the "inventory" table.
	SKU string `json:"sku"`

	// Description is a free-form human-readable label.
	Description string `json:"description"`

	// Quantity is the number of units on hand. Zero and negative values are
	// representable and trigger a stock alert on upsert.
	Quantity int `json:"quantity"`
}

// TableName returns the name of the database table
// associated with the InventoryItem model.
func (i InventoryItem) TableName() string {
	return "inventory"
}

// UpsertItemRequest is the command for inserting or replacing an item.
type UpsertItemRequest struct {
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// Item converts the request into the record that will be stored.
func (r UpsertItemRequest) Item() InventoryItem {
	return InventoryItem{
		SKU:         r.SKU,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
}

// DeleteItemRequest is the command for removing an item by SKU.
type DeleteItemRequest struct {
	SKU string `json:"sku"`
}
