package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/models"
)

func printItems(w io.Writer, items []models.InventoryItem, asJSON bool) error {
	if asJSON {
		if items == nil {
			items = []models.InventoryItem{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, app.MsgNoItems)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tDESCRIPTION\tQUANTITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", item.SKU, item.Description, item.Quantity)
	}
	return tw.Flush()
}
