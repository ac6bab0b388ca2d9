package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.stonic.dev/stonic/internal/ui/output"
	"go.stonic.dev/stonic/internal/ui/style"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear remembered paths",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List remembered paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := c.app.CachedPaths()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			w := cmd.OutOrStdout()
			out := output.New(w)
			for _, e := range entries {
				_, _ = fmt.Fprintf(w, "%s %s %s  %s\n",
					e.Key,
					output.Paint(out, style.Arrow, style.Teal),
					e.Path,
					output.Paint(out, e.RecordedAt.Format(time.DateTime), style.Muted))
			}
			return nil
		},
	}
	list.Flags().Bool("json", false, "Print entries as JSON")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every remembered path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := c.app.RefreshCache(cmd.Context())
			printDone(cmd.OutOrStdout(), fmt.Sprintf("cleared %d cached paths", n))
			return nil
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}
