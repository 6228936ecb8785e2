package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleItems = []models.InventoryItem{
	{SKU: "A-100", Description: "Steel Bolt", Quantity: 40},
	{SKU: "B-200", Description: "Copper Wire", Quantity: 0},
	{SKU: "C-300", Description: "STRAßE sign", Quantity: 2},
	{SKU: "bolt-9", Description: "Spare", Quantity: -1},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns everything", "", []string{"A-100", "B-200", "C-300", "bolt-9"}},
		{"matches description case-insensitively", "BOLT", []string{"A-100", "bolt-9"}},
		{"matches sku", "b-2", []string{"B-200"}},
		{"full case folding", "strasse", []string{"C-300"}},
		{"no match", "zzz", []string{}},
		{"whitespace is part of the query", "steel bolt", []string{"A-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleItems, tt.query)

			skus := make([]string, 0, len(got))
			for _, item := range got {
				skus = append(skus, item.SKU)
			}
			assert.Equal(t, tt.want, skus)
		})
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	items := []models.InventoryItem{{SKU: "A", Description: "a", Quantity: 1}}

	got := Filter(items, "")
	got[0].Quantity = 99

	assert.Equal(t, 1, items[0].Quantity)
}

func TestInventoryCache_LoadAndItems(t *testing.T) {
	c := NewInventoryCache()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())

	input := append([]models.InventoryItem(nil), sampleItems...)
	c.Load(input)
	input[0].SKU = "mutated"

	assert.Equal(t, len(sampleItems), c.Len())
	assert.Equal(t, sampleItems, c.Items(), "cache must hold its own copy")

	items := c.Items()
	items[1].Description = "changed"
	assert.Equal(t, sampleItems, c.Items(), "readers must receive copies")
}

func TestInventoryCache_FilterEmptyEqualsItems(t *testing.T) {
	c := NewInventoryCache()
	c.Load(sampleItems)

	assert.Equal(t, c.Items(), c.Filter(""))
}

func TestInventoryCache_ApplyUpsert(t *testing.T) {
	c := NewInventoryCache()
	c.Load(sampleItems)

	c.ApplyUpsert(models.InventoryItem{SKU: "B-200", Description: "Copper Wire 2mm", Quantity: 12})
	c.ApplyUpsert(models.InventoryItem{SKU: "D-400", Description: "Nut", Quantity: 7})

	items := c.Items()
	require.Len(t, items, 5)
	assert.Equal(t, models.InventoryItem{SKU: "B-200", Description: "Copper Wire 2mm", Quantity: 12}, items[1], "replaced in place")
	assert.Equal(t, "D-400", items[4].SKU, "new SKU appended")
}

func TestInventoryCache_ApplyDelete(t *testing.T) {
	c := NewInventoryCache()
	c.Load(sampleItems)

	assert.True(t, c.ApplyDelete("B-200"))
	assert.False(t, c.ApplyDelete("B-200"))
	assert.False(t, c.ApplyDelete("missing"))

	assert.Equal(t, []models.InventoryItem{sampleItems[0], sampleItems[2], sampleItems[3]}, c.Items())

	// the index must follow the shift
	c.ApplyUpsert(models.InventoryItem{SKU: "bolt-9", Description: "Spare", Quantity: 5})
	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 5, items[2].Quantity)
}

func TestInventoryCache_ConcurrentAccess(t *testing.T) {
	c := NewInventoryCache()
	c.Load(sampleItems)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 100 {
				sku := fmt.Sprintf("W-%d-%d", i, j)
				c.ApplyUpsert(models.InventoryItem{SKU: sku, Description: "concurrent", Quantity: j})
				if j%2 == 0 {
					c.ApplyDelete(sku)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				_ = c.Filter("concurrent")
				_ = c.Items()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(sampleItems)+8*50, c.Len())
	assert.Len(t, c.Filter("CONCURRENT"), 8*50)
}
