package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/service"
	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/spf13/cobra"
)

// SchemaManager reports and changes the database schema version.
// *store.DB implements it.
type SchemaManager interface {
	SchemaVersion(ctx context.Context) (int64, error)
	MigrateSchema(ctx context.Context, oldVersion, newVersion int64) error
}

// App holds the dependencies a command runs against.
type App struct {
	Auth      service.AuthService
	Inventory service.InventoryService
	Schema    SchemaManager

	// RefreshInterval is the tick of "item watch".
	RefreshInterval time.Duration

	// Close is called once after the command finished, successful or not.
	// It may be nil.
	Close func() error
}

// Bootstrap builds the App for one invocation from the merged configuration.
type Bootstrap func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error)

// CLI is the root command together with the state of the current
// invocation.
type CLI struct {
	root      *cobra.Command
	buildInfo models.AppBuildInfo
	bootstrap Bootstrap
	logger    *logger.Logger

	app *App
}

// New assembles the command tree.
func New(buildInfo models.AppBuildInfo, bootstrap Bootstrap, log *logger.Logger) *CLI {
	c := &CLI{
		buildInfo: buildInfo,
		bootstrap: bootstrap,
		logger:    log,
	}

	c.root = &cobra.Command{
		Use:   "warehouse",
		Short: "Warehouse inventory and credential management",
		Long: `warehouse manages stock items and the user accounts allowed to manage them.

Items are stored in PostgreSQL (postgres:// DSN) or SQLite (file path DSN).
When an upsert leaves an item at zero or fewer units, an out-of-stock alert is
sent through the configured notification channel.

Configuration sources, lowest priority first: built-in defaults, JSON file
(--config or CONFIG), environment variables, command-line flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	config.RegisterFlags(c.root.PersistentFlags())

	c.root.AddCommand(
		c.newUserCommand(),
		c.newItemCommand(),
		c.newMigrateCommand(),
		c.newVersionCommand(),
	)

	return c
}

// Command returns the root command.
func (c *CLI) Command() *cobra.Command {
	return c.root
}

// Execute runs the command selected by args and releases the App built for
// it afterwards.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.root.SetArgs(args)

	err := c.root.ExecuteContext(ctx)

	if c.app != nil && c.app.Close != nil {
		if closeErr := c.app.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}
	c.app = nil

	return err
}

// setup loads the configuration and builds the App. It runs before every
// command except "version".
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = c.logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	ctx, _ = c.logger.WithOperationID(ctx)
	cmd.SetContext(ctx)

	c.app, err = c.bootstrap(ctx, cfg, c.logger)
	if err != nil {
		return fmt.Errorf("init app error: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*CLI.setup").Str("command", cmd.CommandPath()).Msg("command started")
	return nil
}
