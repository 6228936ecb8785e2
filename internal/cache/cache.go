// Package cache holds the in-memory view of the inventory used for listing
// and incremental search. The store stays the source of truth; the cache is
// filled from it and only mirrors mutations the store already accepted.
package cache

import (
	"strings"
	"sync"

	"github.com/MKhiriev/warehouse-keeper/models"
	"golang.org/x/text/cases"
)

// InventoryCache is a concurrency-safe copy of the inventory table in
// storage order. Readers always receive copies.
type InventoryCache struct {
	mu    sync.RWMutex
	items []models.InventoryItem
	index map[string]int // sku → position in items
}

// NewInventoryCache returns an empty cache.
func NewInventoryCache() *InventoryCache {
	return &InventoryCache{
		items: []models.InventoryItem{},
		index: map[string]int{},
	}
}

// Load replaces the whole content with items.
func (c *InventoryCache) Load(items []models.InventoryItem) {
	loaded := make([]models.InventoryItem, len(items))
	copy(loaded, items)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = loaded
	c.reindex()
}

// Items returns a copy of the full list.
func (c *InventoryCache) Items() []models.InventoryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.InventoryItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of cached items.
func (c *InventoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Filter returns the cached items matching query, see [Filter].
func (c *InventoryCache) Filter(query string) []models.InventoryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Filter(c.items, query)
}

// ApplyUpsert mirrors a successful store upsert. An existing SKU is
// replaced in place; a new one is appended.
func (c *InventoryCache) ApplyUpsert(item models.InventoryItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[item.SKU]; ok {
		c.items[i] = item
		return
	}

	c.index[item.SKU] = len(c.items)
	c.items = append(c.items, item)
}

// ApplyDelete mirrors a successful store delete and reports whether the SKU
// was cached.
func (c *InventoryCache) ApplyDelete(sku string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[sku]
	if !ok {
		return false
	}

	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.reindex()
	return true
}

// reindex must be called with mu held for writing.
func (c *InventoryCache) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, item := range c.items {
		c.index[item.SKU] = i
	}
}

// Filter returns the items whose SKU or description contains query,
// compared under Unicode case folding. An empty query matches everything.
// The result is a new slice in the order of items; items is not modified.
func Filter(items []models.InventoryItem, query string) []models.InventoryItem {
	if query == "" {
		filtered := make([]models.InventoryItem, len(items))
		copy(filtered, items)
		return filtered
	}

	// a Caser is stateful and must not be shared between goroutines
	fold := cases.Fold()
	needle := fold.String(query)

	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.SKU), needle) ||
			strings.Contains(fold.String(item.Description), needle) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
