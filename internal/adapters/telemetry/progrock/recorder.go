// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"

	"github.com/bitprim/bitprim-ci/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	rec *progrock.Recorder
}

// NewConsole creates a Recorder that renders plain progress frames to w
// as they stream in. This is the production mode: CI logs want every
// line a build emits, not an interactive display.
func NewConsole(w io.Writer) *Recorder {
	return NewRecorder(console.NewWriter(w))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes any pending frames and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
