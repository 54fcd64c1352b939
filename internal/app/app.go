// Package app implements the application layer for bitprim-ci.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
	"github.com/bitprim/bitprim-ci/internal/core/ports"
	"github.com/bitprim/bitprim-ci/internal/engine/filter"
)

// App represents the main application logic: generate the candidate
// matrix, filter and expand it, then hand it to the builder.
type App struct {
	configLoader ports.ConfigLoader
	builder      ports.MatrixBuilder
	logger       ports.Logger
	env          map[string]string
}

// New creates a new App instance. env is the process environment as a
// map; it is passed explicitly so the filter logic stays testable.
func New(loader ports.ConfigLoader, builder ports.MatrixBuilder, logger ports.Logger, env map[string]string) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		logger:       logger,
		env:          env,
	}
}

// RunOptions holds the per-invocation options.
type RunOptions struct {
	ConfigPath string
}

// Run executes the CI build: every configuration of the filtered,
// currency-expanded matrix is built. A matrix that is empty after
// filtering is not an error.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	spec, matrix, err := a.computeMatrix(ctx, opts)
	if err != nil {
		return err
	}

	if len(matrix) == 0 {
		a.logger.Warn("no configurations left after filtering, nothing to build")
		return nil
	}

	if err := a.builder.Run(ctx, spec, matrix); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

// Matrix computes the filtered matrix without building anything.
func (a *App) Matrix(ctx context.Context, opts RunOptions) (domain.Matrix, error) {
	_, matrix, err := a.computeMatrix(ctx, opts)
	return matrix, err
}

func (a *App) computeMatrix(ctx context.Context, opts RunOptions) (*domain.PackagerSpec, domain.Matrix, error) {
	spec, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	candidates, err := a.builder.Generate(ctx, spec)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to generate build matrix")
	}

	matrix := filter.New(spec.Reference).Apply(candidates, a.env)
	a.logger.Info(fmt.Sprintf("build matrix: %d candidates, %d configurations retained", len(candidates), len(matrix)))

	return spec, matrix, nil
}
