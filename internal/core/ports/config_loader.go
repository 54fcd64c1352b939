package ports

import "github.com/bitprim/bitprim-ci/internal/core/domain"

// ConfigLoader defines the interface for loading the packager configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path and returns the
	// validated packager spec.
	Load(path string) (*domain.PackagerSpec, error)
}
