// Package sessions tracks the remote processes of a client, one session per
// engine key, and the policy for rebuilding sessions that lose their
// connection.
package sessions

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrInvalidTransition is returned when a key is moved to a state its
// lifecycle does not allow, such as launching an active key.
var ErrInvalidTransition = zerr.New("invalid session transition")

// Proxy is the connection owned by a session.
type Proxy interface {
	Close() error
}

// Session is the live connection for one key. Calls through Do are
// serialized.
type Session[P Proxy] struct {
	key        domain.EngineKey
	proxy      P
	profile    domain.LaunchProfile
	properties domain.EngineProperties

	callMu sync.Mutex

	mu        sync.RWMutex
	state     State
	directory string
}

// Key returns the session's key.
func (s *Session[P]) Key() domain.EngineKey { return s.key }

// Proxy returns the connection without taking the call lock. It is meant for
// out-of-band signals such as interrupts.
func (s *Session[P]) Proxy() P { return s.proxy }

// Profile returns the launch profile the session was started with.
func (s *Session[P]) Profile() domain.LaunchProfile { return s.profile }

// Properties returns what the remote process reported about itself.
func (s *Session[P]) Properties() domain.EngineProperties { return s.properties }

// State returns the session's lifecycle state.
func (s *Session[P]) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Directory returns the cached working directory.
func (s *Session[P]) Directory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory
}

// SetDirectory caches the working directory.
func (s *Session[P]) SetDirectory(dir string) {
	s.mu.Lock()
	s.directory = dir
	s.mu.Unlock()
}

// Do runs fn with the proxy while holding the call lock, so one call at a
// time reaches the remote process.
func (s *Session[P]) Do(ctx context.Context, fn func(ctx context.Context, p P) error) error {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	if st := s.State(); st != Active {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrLostConnection, "session is not active"),
			"key", s.key.String()), "state", st.String())
	}
	return fn(ctx, s.proxy)
}

func (s *Session[P]) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Start describes a session being activated.
type Start[P Proxy] struct {
	Proxy      P
	Profile    domain.LaunchProfile
	Properties domain.EngineProperties
	Directory  string
}

// Registry maps engine keys to sessions. It owns every session it holds.
type Registry[P Proxy] struct {
	mu       sync.Mutex
	states   map[domain.EngineKey]State
	sessions map[domain.EngineKey]*Session[P]
}

// NewRegistry returns an empty registry.
func NewRegistry[P Proxy]() *Registry[P] {
	return &Registry[P]{
		states:   make(map[domain.EngineKey]State),
		sessions: make(map[domain.EngineKey]*Session[P]),
	}
}

// State returns the lifecycle state of key.
func (r *Registry[P]) State(key domain.EngineKey) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[key]
}

// Get returns the active session for key.
func (r *Registry[P]) Get(key domain.EngineKey) (*Session[P], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[key]
	if !ok || r.states[key] != Active {
		return nil, false
	}
	return s, true
}

// Exists reports whether key has an active session.
func (r *Registry[P]) Exists(key domain.EngineKey) bool {
	_, ok := r.Get(key)
	return ok
}

// BeginLaunch moves key from Absent to Launching.
func (r *Registry[P]) BeginLaunch(key domain.EngineKey) error {
	return r.move(key, Launching)
}

// AbortLaunch returns a launching key to Absent.
func (r *Registry[P]) AbortLaunch(key domain.EngineKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.states[key] == Launching {
		delete(r.states, key)
	}
}

// Activate registers the session of a launching key.
func (r *Registry[P]) Activate(key domain.EngineKey, start Start[P]) (*Session[P], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.check(key, Active); err != nil {
		return nil, err
	}
	s := &Session[P]{
		key:        key,
		proxy:      start.Proxy,
		profile:    start.Profile,
		properties: start.Properties,
		directory:  start.Directory,
		state:      Active,
	}
	r.states[key] = Active
	r.sessions[key] = s
	return s, nil
}

// MarkFailed flags an active session as failed. Further calls through it
// are refused.
func (r *Registry[P]) MarkFailed(key domain.EngineKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[key]
	if !ok || r.states[key] != Active {
		return false
	}
	r.states[key] = Failed
	s.setState(Failed)
	return true
}

// Close shuts down the session for key and removes it. Closing an absent key
// is a no-op.
func (r *Registry[P]) Close(key domain.EngineKey) error {
	s, ok := r.detach(key)
	if !ok {
		return nil
	}
	if err := s.proxy.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close session"), "key", key.String())
	}
	return nil
}

// Remove drops the session for key without closing its proxy and returns it.
func (r *Registry[P]) Remove(key domain.EngineKey) (*Session[P], bool) {
	return r.detach(key)
}

// Keys returns the keys of all registered sessions in key order.
func (r *Registry[P]) Keys() []domain.EngineKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]domain.EngineKey, 0, len(r.sessions))
	for k := range r.sessions {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, domain.EngineKey.Compare)
	return keys
}

// Len returns the number of registered sessions.
func (r *Registry[P]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry[P]) detach(key domain.EngineKey) (*Session[P], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[key]
	if !ok {
		return nil, false
	}
	s.setState(Closing)
	delete(r.sessions, key)
	delete(r.states, key)
	return s, true
}

func (r *Registry[P]) move(key domain.EngineKey, to State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(key, to); err != nil {
		return err
	}
	r.states[key] = to
	return nil
}

func (r *Registry[P]) check(key domain.EngineKey, to State) error {
	from := r.states[key]
	if !canMove(from, to) {
		err := zerr.Wrap(ErrInvalidTransition, "cannot change session state")
		return zerr.With(zerr.With(zerr.With(err, "key", key.String()), "from", from.String()), "to", to.String())
	}
	return nil
}
