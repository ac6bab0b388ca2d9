package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.stonic.dev/stonic/internal/ui/style"
)

func (c *CLI) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <query> <new-name>",
		Short: "Rename a file or folder found by spoken name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.app.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), fmt.Sprintf("renamed %s %s", style.Arrow, item.Path))
			return nil
		},
	}
}

func (c *CLI) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <query>",
		Short: "Delete a file or folder found by spoken name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, _ := cmd.Flags().GetBool("recursive")
			item, err := c.app.Delete(cmd.Context(), joinArgs(args), recursive)
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "deleted "+item.Path)
			return nil
		},
	}
	cmd.Flags().BoolP("recursive", "r", false, "Delete non-empty folders")
	return cmd
}

func (c *CLI) newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder in the base directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.app.CreateFolder(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "created "+item.Path)
			return nil
		},
	}
}

func (c *CLI) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <app>",
		Short: "Start an application by spoken name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := c.app.Launch(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "started "+line)
			return nil
		},
	}
}
