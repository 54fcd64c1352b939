package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitprim/bitprim-ci/internal/adapters/telemetry/progrock"
)

func TestConsoleRendersVertexOutput(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.NewConsole(&buf)

	_, vertex := recorder.Record(context.Background(), "bitprim-network/0.7.0@bitprim/testing Release/x86_64")
	require.NotNil(t, vertex)

	_, err := vertex.Stdout().Write([]byte("Exported revision abc123\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("WARN: profile not found\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, recorder.Close())

	out := buf.String()
	assert.Contains(t, out, "bitprim-network/0.7.0@bitprim/testing Release/x86_64")
	assert.Contains(t, out, "Exported revision abc123")
	assert.Contains(t, out, "WARN: profile not found")
}

func TestConsoleRendersFailedVertex(t *testing.T) {
	var buf bytes.Buffer
	recorder := progrock.NewConsole(&buf)

	_, vertex := recorder.Record(context.Background(), "bitprim-network/0.7.0@bitprim/testing Debug/x86_64")
	vertex.Complete(assert.AnError)
	require.NoError(t, recorder.Close())

	assert.Contains(t, buf.String(), "ERROR")
}
