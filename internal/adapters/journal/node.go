package journal

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

// DefaultPath is where the result journal is written unless overridden.
const DefaultPath = "bitprim_ci_results.json"

// NodeID is the unique identifier for the result journal Graft node.
const NodeID graft.ID = "adapter.result_journal"

func init() {
	graft.Register(graft.Node[ports.ResultStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResultStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
