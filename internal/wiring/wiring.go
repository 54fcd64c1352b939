// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/bitprim/bitprim-ci/internal/adapters/conan"
	_ "github.com/bitprim/bitprim-ci/internal/adapters/config"
	_ "github.com/bitprim/bitprim-ci/internal/adapters/journal"
	_ "github.com/bitprim/bitprim-ci/internal/adapters/logger"
	_ "github.com/bitprim/bitprim-ci/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/bitprim/bitprim-ci/internal/app"
)
