// Package commands implements the CLI commands for stonic.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.stonic.dev/stonic/internal/build"
	"go.stonic.dev/stonic/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, query string) (domain.Resolution, error)
	Open(ctx context.Context, query string) (domain.Resolution, error)
	Do(ctx context.Context, command string) string
	Rename(ctx context.Context, query, newName string) (domain.Item, error)
	Delete(ctx context.Context, query string, recursive bool) (domain.Item, error)
	CreateFolder(ctx context.Context, name string) (domain.Item, error)
	RefreshCache(ctx context.Context) int
	CachedPaths() []domain.CacheEntry
	Launch(ctx context.Context, app string) (string, error)
	SetSleeping(sleeping bool) error
	SleepStatus() string
	Serve(ctx context.Context, t mcp.Transport) error
}

// LogControl is implemented by loggers whose format can be switched from flags.
type LogControl interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogControl lets --json-logs and --verbose reconfigure lc.
func WithLogControl(lc LogControl) Option {
	return func(c *CLI) {
		c.logs = lc
	}
}

// CLI represents the command line interface for stonic.
type CLI struct {
	app     Application
	logs    LogControl
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           domain.AppName,
		Short:         "Find, open and tidy files and folders by spoken name",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
			c.logs.SetJSON(true)
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			c.logs.SetVerbose(true)
		}
	}

	rootCmd.AddCommand(
		c.newResolveCmd(),
		c.newOpenCmd(),
		c.newDoCmd(),
		c.newRenameCmd(),
		c.newDeleteCmd(),
		c.newMkdirCmd(),
		c.newLaunchCmd(),
		c.newCacheCmd(),
		c.newSleepCmd(),
		c.newWakeCmd(),
		c.newStatusCmd(),
		c.newServeCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// joinArgs lets queries be typed without quotes.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
