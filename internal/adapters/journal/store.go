// Package journal persists per-configuration build results.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

// Store implements ports.ResultStore using a flat JSON file keyed by
// configuration fingerprint.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildResult
}

// NewStore creates a new result store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildResult),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read result journal")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal result journal")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal result journal")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for result journal")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write result journal")
	}

	return nil
}

// Get retrieves the result recorded for a configuration fingerprint.
func (s *Store) Get(fingerprint string) (*domain.BuildResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.cache[fingerprint]
	if !ok {
		return nil, nil
	}
	return &result, nil
}

// Put stores a build result.
func (s *Store) Put(result domain.BuildResult) error {
	s.mu.Lock()
	s.cache[result.Fingerprint] = result
	s.mu.Unlock()

	return s.save()
}
