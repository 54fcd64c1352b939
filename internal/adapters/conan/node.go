package conan

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bitprim/bitprim-ci/internal/adapters/journal"
	"github.com/bitprim/bitprim-ci/internal/adapters/logger"
	"github.com/bitprim/bitprim-ci/internal/adapters/telemetry"
	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

// NodeID is the unique identifier for the conan builder Graft node.
const NodeID graft.ID = "adapter.conan_builder"

func init() {
	graft.Register(graft.Node[ports.MatrixBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.NodeID, journal.NodeID},
		Run: func(ctx context.Context) (ports.MatrixBuilder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ResultStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log, tel, store), nil
		},
	})
}
