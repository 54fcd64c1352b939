package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/bitprim/bitprim-ci/internal/adapters/conan"     //nolint:depguard // Wired in app layer
	"github.com/bitprim/bitprim-ci/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/bitprim/bitprim-ci/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/bitprim/bitprim-ci/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/bitprim/bitprim-ci/internal/core/domain"
	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by
// the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			conan.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.MatrixBuilder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, builder, log, domain.ParseEnviron(os.Environ())), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Telemetry: tel}, nil
		},
	})
}
