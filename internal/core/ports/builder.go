// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

// MatrixBuilder generates the candidate build matrix and executes a
// (filtered) matrix against the package builder.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type MatrixBuilder interface {
	// Generate enumerates the candidate configurations for the given
	// packager spec: every supported build type with and without the
	// shared library option, for each configured architecture.
	Generate(ctx context.Context, spec *domain.PackagerSpec) (domain.Matrix, error)

	// Run builds every configuration in the matrix. It returns an error
	// if any configuration fails; configurations after a failure are
	// still attempted.
	Run(ctx context.Context, spec *domain.PackagerSpec, matrix domain.Matrix) error
}
