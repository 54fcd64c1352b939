package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitprim/bitprim-ci/internal/adapters/journal"
	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

func TestStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	s, err := journal.NewStore(path)
	require.NoError(t, err)

	result := domain.BuildResult{
		Fingerprint: "deadbeefdeadbeef",
		Reference:   "bitprim-network/0.7.0@bitprim/testing",
		Status:      domain.StatusSucceeded,
		StartedAt:   time.Now().UTC().Truncate(time.Second),
		Duration:    3 * time.Second,
	}
	require.NoError(t, s.Put(result))

	// A fresh store must see the persisted result.
	reloaded, err := journal.NewStore(path)
	require.NoError(t, err)

	got, err := reloaded.Get("deadbeefdeadbeef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result.Fingerprint, got.Fingerprint)
	assert.Equal(t, result.Reference, got.Reference)
	assert.Equal(t, result.Status, got.Status)
	assert.Equal(t, result.Duration, got.Duration)
	assert.True(t, result.StartedAt.Equal(got.StartedAt))
}

func TestStore_GetMissing(t *testing.T) {
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "results.json"))
	require.NoError(t, err)

	got, err := s.Get("unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutReplaces(t *testing.T) {
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "results.json"))
	require.NoError(t, err)

	require.NoError(t, s.Put(domain.BuildResult{Fingerprint: "f", Status: domain.StatusFailed}))
	require.NoError(t, s.Put(domain.BuildResult{Fingerprint: "f", Status: domain.StatusSucceeded}))

	got, err := s.Get("f")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusSucceeded, got.Status)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.NewStore(path)
	assert.Error(t, err)
}
