// Package commands implements the CLI commands for the transfer dependency tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/transfer/internal/app"
	"go.trai.ch/transfer/internal/build"
)

// CLI represents the command line interface for transfer.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	global  app.GlobalOptions
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, out io.Writer, opts app.ResolveOptions) error
	Collect(ctx context.Context, out io.Writer, opts app.CollectOptions) error
	Detect(ctx context.Context, out io.Writer, opts app.GlobalOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "transfer",
		Short:         "Resolve and collect artifact dependencies from Maven repositories",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&c.global.JSON, "json", false, "Write logs as JSON lines")
	flags.BoolVar(&c.global.Trace, "trace", false, "Enable debug logging and span summaries")
	flags.StringVar(&c.global.MetricsOut, "metrics-out", "", "Write Prometheus metrics to this file after the command")
	flags.BoolVar(&c.global.Offline, "offline", false, "Use the local repository only")
	flags.StringVar(&c.global.LocalRepository, "local-repo", "", "Override the local repository directory")

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCollectCmd())
	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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
