package cli

import (
	"fmt"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/migrations"
	"github.com/spf13/cobra"
)

const (
	flagFrom = "from"
	flagTo   = "to"
)

func (c *CLI) newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move the database schema to another version",
		Long: `Move the database schema from version --from to version --to.

--from defaults to the version the database is at; --to defaults to the
latest known version. The command fails without changes when --from does not
match the database.`,
		Args: cobra.NoArgs,
		RunE: c.runMigrate,
	}

	migrateCmd.Flags().Int64(flagFrom, 0, "Expected current schema version")
	migrateCmd.Flags().Int64(flagTo, migrations.LatestVersion, "Target schema version")

	return migrateCmd
}

func (c *CLI) runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	from, err := cmd.Flags().GetInt64(flagFrom)
	if err != nil {
		return err
	}
	to, err := cmd.Flags().GetInt64(flagTo)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed(flagFrom) {
		if from, err = c.app.Schema.SchemaVersion(ctx); err != nil {
			return err
		}
	}

	if err = c.app.Schema.MigrateSchema(ctx, from, to); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d\n", app.MsgSchemaMigrated, from, to)
	return nil
}
