package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/bitprim/bitprim-ci/internal/adapters/telemetry/progrock"
	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if quietRequested(os.Args[1:]) {
				return NewNoOp(), nil
			}
			return progrock.NewConsole(os.Stderr), nil
		},
	})
}

// quietRequested reports whether the quiet flag appears in args. The
// telemetry adapter is constructed before the command tree parses its
// flags, so the flag is scanned here directly.
func quietRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--quiet", "-q", "--quiet=true":
			return true
		}
	}
	return false
}
