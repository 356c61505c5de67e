// Package dispatch implements the engine manager: it owns the engine
// sessions of a client, launches and restarts them, and routes every remote
// call through a uniform restart policy.
package dispatch

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/sessions"
	"go.trai.ch/zerr"
)

// BatchLaunchers returns a process launcher running inside the batch job of
// an existing server on host.
type BatchLaunchers interface {
	Launcher(ctx context.Context, host string) (ports.ProcessLauncher, error)
}

// Deps are the collaborators of a Manager. Chooser, Provider and Batch may
// be nil.
type Deps struct {
	Launcher ports.Launcher
	Provider ports.LauncherProvider
	Batch    BatchLaunchers
	Chooser  ports.ProfileChooser
	Profiles ports.ProfileCache
	Notifier ports.Notifier
	Logger   ports.Logger
	Tracer   ports.Tracer
	Metrics  ports.Metrics
	Progress ports.Progress
}

// EngineOptions qualify one engine launch.
type EngineOptions struct {
	Arguments   []string
	SkipChooser bool
	// NumRestarts overrides the configured restart count when positive.
	NumRestarts   int
	ReverseLaunch bool
}

// simTarget is where a simulation listens.
type simTarget struct {
	addr        string
	securityKey string
}

// restartArgs remembers how a key was started so it can be started again.
type restartArgs struct {
	opts EngineOptions
	sim  *simTarget
}

// Manager owns the engine sessions of a client.
type Manager struct {
	cfg      domain.EngineConfig
	profiles []domain.LaunchProfile
	deps     Deps
	registry *sessions.Registry[ports.EngineProxy]

	mu        sync.Mutex
	launching bool
	settings  domain.GlobalSettings
	arguments []string
	restart   map[domain.EngineKey]restartArgs
}

// NewManager returns a manager for cfg.
func NewManager(cfg *domain.Config, deps Deps) *Manager {
	return &Manager{
		cfg:      cfg.Engine,
		profiles: slices.Clone(cfg.Profiles),
		deps:     deps,
		registry: sessions.NewRegistry[ports.EngineProxy](),
		settings: cfg.Engine.Settings.Clone(),
		restart:  make(map[domain.EngineKey]restartArgs),
	}
}

// EngineExists reports whether key has an active session.
func (m *Manager) EngineExists(key domain.EngineKey) bool {
	return m.registry.Exists(key)
}

// EngineKeys returns the keys of all sessions in key order.
func (m *Manager) EngineKeys() []domain.EngineKey {
	return m.registry.Keys()
}

// EngineProperties returns what the engine for key reported at launch.
func (m *Manager) EngineProperties(key domain.EngineKey) (domain.EngineProperties, bool) {
	s, ok := m.registry.Get(key)
	if !ok {
		return domain.EngineProperties{}, false
	}
	return s.Properties(), true
}

// AddArguments appends arguments handed to every engine launched afterwards.
func (m *Manager) AddArguments(args ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.arguments = append(m.arguments, args...)
}

// GlobalSettings returns the settings pushed to engines.
func (m *Manager) GlobalSettings() domain.GlobalSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.Clone()
}

// IsLaunching reports whether a launch is in progress.
func (m *Manager) IsLaunching() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.launching
}

// CloseEngine shuts down the engine for key and forgets how it was started.
func (m *Manager) CloseEngine(ctx context.Context, key domain.EngineKey) error {
	_, span := m.deps.Tracer.Start(ctx, "CloseEngine", ports.WithAttribute("key", key.String()))
	defer span.End()

	m.mu.Lock()
	delete(m.restart, key)
	m.mu.Unlock()

	existed := slices.Contains(m.registry.Keys(), key)
	err := m.registry.Close(key)
	if err != nil {
		span.RecordError(err)
	}
	if existed {
		m.deps.Notifier.ClearStatus(key)
		m.sessionsChanged()
	}
	return err
}

// CloseEngines shuts down every engine.
func (m *Manager) CloseEngines(ctx context.Context) error {
	var errs error
	for _, key := range m.registry.Keys() {
		errs = errors.Join(errs, m.CloseEngine(ctx, key))
	}
	return errs
}

// InterruptEngine asks the engine for key to stop its current computation.
// It does not wait for the call lock, so it reaches an engine that is busy
// executing.
func (m *Manager) InterruptEngine(ctx context.Context, key domain.EngineKey) error {
	s, ok := m.registry.Get(key)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNoEngine, "cannot interrupt engine"), "key", key.String())
	}
	return s.Proxy().Interrupt(ctx)
}

// RemoveFailedEngine drops the session of an engine that stopped
// responding. Windows are told that the engine's networks are gone.
func (m *Manager) RemoveFailedEngine(key domain.EngineKey) {
	if m.removeFailed(key) {
		m.sessionsChanged()
	}
}

// SendKeepAlives pings every engine. Engines that do not answer are removed
// once all were pinged. It returns the removed keys.
func (m *Manager) SendKeepAlives(ctx context.Context) []domain.EngineKey {
	var failed []domain.EngineKey
	for _, key := range m.registry.Keys() {
		s, ok := m.registry.Get(key)
		if !ok {
			continue
		}
		err := s.Do(ctx, func(ctx context.Context, p ports.EngineProxy) error {
			return p.SendKeepAlive(ctx)
		})
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return failed
		}
		m.deps.Logger.Warn(fmt.Sprintf("keep-alive to engine on %s failed: %v", key, err))
		m.deps.Metrics.KeepAliveFailed(key.Host)
		m.registry.MarkFailed(key)
		failed = append(failed, key)
	}

	removed := false
	for _, key := range failed {
		removed = m.removeFailed(key) || removed
	}
	if removed {
		m.sessionsChanged()
	}
	return failed
}

// SetGlobalSettings stores settings and pushes them to every live engine.
func (m *Manager) SetGlobalSettings(ctx context.Context, settings domain.GlobalSettings) error {
	m.mu.Lock()
	m.settings = settings.Clone()
	m.mu.Unlock()

	var errs error
	for _, key := range m.registry.Keys() {
		err := m.withRestart(ctx, key, "SetGlobalSettings", func(ctx context.Context, p ports.EngineProxy) error {
			return p.SetGlobalSettings(ctx, settings.Clone())
		})
		errs = errors.Join(errs, err)
	}
	return errs
}

func (m *Manager) removeFailed(key domain.EngineKey) bool {
	s, ok := m.registry.Remove(key)
	if !ok {
		return false
	}

	m.deps.Notifier.Message(domain.LogLevelWarn,
		fmt.Sprintf("The engine on %s exited unexpectedly. Its plots must be regenerated.", key))
	m.deps.Notifier.ClearStatus(key)
	m.deps.Notifier.InvalidateNetworks(key)

	if err := s.Proxy().Close(); err != nil {
		m.deps.Logger.Warn(fmt.Sprintf("closing failed engine on %s: %v", key, err))
	}
	return true
}

func (m *Manager) sessionsChanged() {
	keys := m.registry.Keys()
	m.deps.Metrics.SessionsActive(domain.RoleEngine, len(keys))
	m.deps.Notifier.EngineListChanged(keys)
}

func (m *Manager) numRestarts(key domain.EngineKey) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.restart[key]; ok && r.opts.NumRestarts > 0 {
		return r.opts.NumRestarts
	}
	return m.cfg.NumRestarts
}

func newSecurityKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", zerr.Wrap(err, "failed to generate security key")
	}
	return hex.EncodeToString(b), nil
}
