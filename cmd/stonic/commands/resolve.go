package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Print the file or folder a spoken name refers to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Resolve(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResolution(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <query>",
		Short: "Find a file or folder and open it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Open(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			printResolution(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *CLI) newDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <command>",
		Short: `Run a free-text command such as "create folder reports"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(c.app.Do(cmd.Context(), joinArgs(args)) + "\n"))
			return err
		},
	}
}
