// Package profiles remembers, per host, the launch profile a user last
// launched with.
package profiles

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ProfileCache on one JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.LaunchProfile
}

// NewStore opens the cache at path. A missing file is an empty cache.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.LaunchProfile),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDefaultStore opens the cache below the user's home directory.
func NewDefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate home directory")
	}
	return NewStore(domain.DefaultProfileCachePath(home))
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrProfileStoreReadFailed.Error()), "path", s.path)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrProfileStoreReadFailed, err.Error()), "path", s.path)
	}
	return nil
}

// save must be called with mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrProfileStoreWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProfileStoreWriteFailed.Error()), "path", s.path)
	}
	if err := os.WriteFile(s.path, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProfileStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Get returns the cached profile of host, or nil when there is none.
func (s *Store) Get(host string) (*domain.LaunchProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.cache[domain.NormalizeHost(host)]
	if !ok {
		return nil, nil
	}
	p = p.Clone()
	return &p, nil
}

// Put stores the profile used for host.
func (s *Store) Put(host string, profile domain.LaunchProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[domain.NormalizeHost(host)] = profile.Clone()
	return s.save()
}

// Clear forgets the profile of host.
func (s *Store) Clear(host string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	host = domain.NormalizeHost(host)
	if _, ok := s.cache[host]; !ok {
		return nil
	}
	delete(s.cache, host)
	return s.save()
}
