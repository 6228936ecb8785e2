//go:build property
// +build property

package cache

import (
	"strings"
	"testing"

	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genItems() gopter.Gen {
	item := gopter.CombineGens(
		gen.Identifier(),
		gen.AlphaString(),
		gen.IntRange(-10, 100),
	).Map(func(values []any) models.InventoryItem {
		return models.InventoryItem{
			SKU:         values[0].(string),
			Description: values[1].(string),
			Quantity:    values[2].(int),
		}
	})
	return gen.SliceOf(item)
}

// TestFilterProperties checks that filtering is an order-preserving exact
// subset of the full list.
func TestFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("empty query returns the full list", prop.ForAll(
		func(items []models.InventoryItem) bool {
			got := Filter(items, "")
			if len(got) != len(items) {
				return false
			}
			for i := range items {
				if got[i] != items[i] {
					return false
				}
			}
			return true
		},
		genItems(),
	))

	properties.Property("result is exactly the matching items in order", prop.ForAll(
		func(items []models.InventoryItem, query string) bool {
			got := Filter(items, query)
			needle := strings.ToLower(query)

			j := 0
			for _, item := range items {
				match := strings.Contains(strings.ToLower(item.SKU), needle) ||
					strings.Contains(strings.ToLower(item.Description), needle)
				if !match {
					continue
				}
				if j >= len(got) || got[j] != item {
					return false
				}
				j++
			}
			return j == len(got)
		},
		genItems(),
		gen.AlphaString().Map(func(s string) string {
			if len(s) > 3 {
				return s[:3]
			}
			return s
		}),
	))

	properties.Property("query case does not matter", prop.ForAll(
		func(items []models.InventoryItem, query string) bool {
			return len(Filter(items, strings.ToUpper(query))) == len(Filter(items, strings.ToLower(query)))
		},
		genItems(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
