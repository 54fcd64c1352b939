// Package commands implements the CLI commands for the bitprim-ci tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/bitprim/bitprim-ci/internal/app"
	"github.com/bitprim/bitprim-ci/internal/build"
)

// CLI represents the command line interface for bitprim-ci.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bitprim-ci",
		Short:         "Build and package the bitprim libraries across the CI build matrix",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "packager.yaml", "Path to packager configuration file")
	// Consumed by the telemetry adapter before cobra parses; declared
	// here so it shows in help and passes flag validation.
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress build progress output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newMatrixCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	return app.RunOptions{ConfigPath: configPath}
}
