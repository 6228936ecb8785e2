package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/service"
	"github.com/MKhiriev/warehouse-keeper/internal/workers"
	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/spf13/cobra"
)

const flagJSON = "json"

func (c *CLI) newItemCommand() *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Manage inventory items",
	}

	upsertCmd := &cobra.Command{
		Use:   "upsert <sku> <description> <quantity>",
		Short: "Insert or replace an item",
		Long: `Insert an item or replace the item with the same SKU.

An item left at zero or fewer units triggers an out-of-stock alert.
Put "--" before the arguments to pass a negative quantity:

  warehouse item upsert -- A1 Widget -3`,
		Args: cobra.ExactArgs(3),
		RunE: c.runItemUpsert,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <sku>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runItemDelete,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE:  c.runItemList,
	}

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List items whose SKU or description contains query",
		Long: `List items whose SKU or description contains query.

Matching ignores case, including Unicode case folding.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runItemSearch,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [query]",
		Short: "Reprint the (filtered) item list on every refresh",
		Long: `Reload the inventory every --refresh-interval and print the items matching
query, picking up changes made by other processes. Runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runItemWatch,
	}

	for _, cmd := range []*cobra.Command{listCmd, searchCmd} {
		cmd.Flags().Bool(flagJSON, false, "Print items as JSON")
	}

	itemCmd.AddCommand(upsertCmd, deleteCmd, listCmd, searchCmd, watchCmd)
	return itemCmd
}

func (c *CLI) runItemUpsert(cmd *cobra.Command, args []string) error {
	quantity, err := service.ParseQuantity(args[2])
	if err != nil {
		return err
	}

	req := models.UpsertItemRequest{SKU: args[0], Description: args[1], Quantity: quantity}
	if err = c.app.Inventory.UpsertItem(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.MsgItemSaved, req.SKU)
	return nil
}

func (c *CLI) runItemDelete(cmd *cobra.Command, args []string) error {
	deleted, err := c.app.Inventory.DeleteItem(cmd.Context(), models.DeleteItemRequest{SKU: args[0]})
	if err != nil {
		return err
	}

	msg := app.MsgItemNotFound
	if deleted {
		msg = app.MsgItemDeleted
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", msg, args[0])
	return nil
}

func (c *CLI) runItemList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := c.app.Inventory.Load(ctx); err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool(flagJSON)
	return printItems(cmd.OutOrStdout(), c.app.Inventory.ListItems(ctx), asJSON)
}

func (c *CLI) runItemSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := c.app.Inventory.Load(ctx); err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool(flagJSON)
	return printItems(cmd.OutOrStdout(), c.app.Inventory.FilterItems(ctx, args[0]), asJSON)
}

func (c *CLI) runItemWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var query string
	if len(args) == 1 {
		query = args[0]
	}

	if err := c.app.Inventory.Load(ctx); err != nil {
		return err
	}

	printer := &watchPrinter{inventory: c.app.Inventory, query: query, out: cmd.OutOrStdout()}
	if err := printer.print(ctx); err != nil {
		return err
	}

	ws := workers.NewWorkers(workers.NewRefreshWorker(printer, c.app.RefreshInterval, logger.FromContext(ctx)))
	ws.Start(ctx)
	<-ctx.Done()
	ws.Stop()

	return nil
}

// watchPrinter refreshes the inventory and prints the filtered items.
type watchPrinter struct {
	inventory service.InventoryService
	query     string
	out       io.Writer
}

func (p *watchPrinter) Refresh(ctx context.Context) error {
	if err := p.inventory.Refresh(ctx); err != nil {
		return err
	}
	return p.print(ctx)
}

func (p *watchPrinter) print(ctx context.Context) error {
	if err := printItems(p.out, p.inventory.FilterItems(ctx, p.query), false); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out)
	return err
}
