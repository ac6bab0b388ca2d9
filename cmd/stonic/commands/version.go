package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.stonic.dev/stonic/internal/build"
	"go.stonic.dev/stonic/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", domain.AppName, build.Version)
		},
	}
}
