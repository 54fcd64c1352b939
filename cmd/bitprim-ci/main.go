// Package main is the entry point for the bitprim-ci tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/bitprim/bitprim-ci/cmd/bitprim-ci/commands"
	"github.com/bitprim/bitprim-ci/internal/app"
	"github.com/bitprim/bitprim-ci/internal/core/domain"
	_ "github.com/bitprim/bitprim-ci/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Flush build progress before the process exits.
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildExecutionFailed) {
			// Per-configuration failures were already logged by the builder.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
