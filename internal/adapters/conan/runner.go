package conan

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

// Builder implements ports.MatrixBuilder against the conan CLI.
type Builder struct {
	logger    ports.Logger
	telemetry ports.Telemetry
	store     ports.ResultStore

	// bin is the conan executable name, overridable in tests.
	bin string
}

var _ ports.MatrixBuilder = (*Builder)(nil)

// NewBuilder creates a new conan Builder.
func NewBuilder(logger ports.Logger, telemetry ports.Telemetry, store ports.ResultStore) *Builder {
	return &Builder{
		logger:    logger,
		telemetry: telemetry,
		store:     store,
		bin:       "conan",
	}
}

// Run builds every configuration in the matrix with `conan create`.
// Remotes are registered once up front. Configurations already
// journaled as succeeded are skipped. The rest run with the spec's
// parallelism bound; a failing configuration does not stop the
// remaining ones, but any failure makes Run return an error once the
// whole matrix has been attempted.
func (b *Builder) Run(ctx context.Context, spec *domain.PackagerSpec, matrix domain.Matrix) error {
	if err := b.addRemotes(ctx, spec); err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		failed int
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(spec.Parallelism)

	for _, cfg := range matrix {
		group.Go(func() error {
			if err := b.runOne(ctx, spec, cfg); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				b.logger.Error(err)
			}
			return nil
		})
	}

	// Workers never return errors, so this only waits.
	_ = group.Wait()

	if failed > 0 {
		return zerr.With(domain.ErrBuildExecutionFailed, "failed_configurations", failed)
	}
	return nil
}

func (b *Builder) runOne(ctx context.Context, spec *domain.PackagerSpec, cfg domain.BuildConfiguration) error {
	fingerprint := domain.Fingerprint(cfg)
	if prev, err := b.store.Get(fingerprint); err != nil {
		b.logger.Warn("failed to read journal: " + err.Error())
	} else if prev != nil && prev.Status == domain.StatusSucceeded {
		// A re-run after a partial failure only rebuilds what is missing.
		b.logger.Info("skipping " + spec.Reference.String() + " [" + fingerprint + "]: already packaged")
		return nil
	}

	name := fmt.Sprintf("%s %s/%s [%s]",
		spec.Reference.String(), cfg.Settings["build_type"], cfg.Settings["arch"], fingerprint)

	_, vertex := b.telemetry.Record(ctx, name)

	started := time.Now()
	err := b.create(ctx, spec, cfg, vertex)
	vertex.Complete(err)

	result := domain.BuildResult{
		Fingerprint: fingerprint,
		Reference:   spec.Reference.String(),
		Status:      domain.StatusSucceeded,
		Settings:    cfg.Settings,
		StartedAt:   started,
		Duration:    time.Since(started),
	}
	if err != nil {
		result.Status = domain.StatusFailed
		result.Error = err.Error()
	}
	if storeErr := b.store.Put(result); storeErr != nil {
		b.logger.Warn("failed to record build result: " + storeErr.Error())
	}

	return err
}

func (b *Builder) create(ctx context.Context, spec *domain.PackagerSpec, cfg domain.BuildConfiguration, vertex ports.Vertex) error {
	args := createArgs(spec, cfg)

	cmd := exec.CommandContext(ctx, b.bin, args...) //nolint:gosec // args derive from validated config
	cmd.Stdout = vertex.Stdout()
	cmd.Stderr = vertex.Stderr()
	cmd.Env = commandEnv(cfg)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(
			zerr.Wrap(err, "conan create failed"),
			"exit_code", exitCode),
			"fingerprint", domain.Fingerprint(cfg))
	}
	return nil
}

func (b *Builder) addRemotes(ctx context.Context, spec *domain.PackagerSpec) error {
	for i, url := range spec.Remotes {
		name := fmt.Sprintf("%s-ci-%d", spec.Reference.User, i)
		cmd := exec.CommandContext(ctx, b.bin, remoteArgs(name, url)...) //nolint:gosec // args derive from validated config
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to add conan remote"), "remote", url)
		}
		b.logger.Info("registered conan remote " + url)
	}
	return nil
}

// commandEnv merges the configuration's environment overrides over the
// process environment and injects build-time requirements.
func commandEnv(cfg domain.BuildConfiguration) []string {
	env := os.Environ()
	for _, k := range sortedKeys(cfg.EnvVars) {
		env = append(env, k+"="+cfg.EnvVars[k])
	}
	if len(cfg.BuildRequires) > 0 {
		env = append(env, "CONAN_BUILD_REQUIRES="+buildRequiresEnv(cfg.BuildRequires))
	}
	return env
}
