package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		// no configuration or storage needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.BuildCommit())
			return nil
		},
	}
}
