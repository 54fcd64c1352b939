package ports

import "github.com/bitprim/bitprim-ci/internal/core/domain"

// ResultStore persists per-configuration build outcomes across a CI run.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the result recorded for a configuration fingerprint.
	// It returns nil without error when no result is recorded.
	Get(fingerprint string) (*domain.BuildResult, error)

	// Put stores a build result, replacing any previous record for the
	// same fingerprint.
	Put(result domain.BuildResult) error
}
