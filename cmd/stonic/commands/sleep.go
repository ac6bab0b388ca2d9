package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.stonic.dev/stonic/internal/core/domain"
)

func (c *CLI) newSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep",
		Short: "Put the assistant to sleep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.SetSleeping(true); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.SleepingStatus)
			return nil
		},
	}
}

func (c *CLI) newWakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wake",
		Short: "Wake the assistant up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.SetSleeping(false); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.WakeReply)
			return nil
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Tell whether the assistant is sleeping",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.SleepStatus())
		},
	}
}
