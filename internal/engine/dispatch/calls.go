package dispatch

import (
	"context"
	"fmt"

	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/sessions"
	"go.trai.ch/zerr"
)

type callFunc func(ctx context.Context, p ports.EngineProxy) error

// withRestart runs a restart-eligible call: a missing engine is launched
// first, and a lost connection rebuilds the engine and retries the call up
// to the restart count.
func (m *Manager) withRestart(ctx context.Context, key domain.EngineKey, method string, fn callFunc) (err error) {
	ctx, span := m.deps.Tracer.Start(ctx, method, ports.WithAttribute("key", key.String()))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	if !m.registry.Exists(key) {
		m.deps.Notifier.Status(key, "Launching engine on "+key.Host)
		if err := m.ensureEngine(ctx, key); err != nil {
			return err
		}
	}

	policy := sessions.RestartPolicy{NumRestarts: m.numRestarts(key), RetryDelay: m.cfg.RetryDelay}
	err = policy.Run(ctx,
		func(ctx context.Context) error {
			s, ok := m.registry.Get(key)
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrLostConnection, "engine went away"), "key", key.String())
			}
			return s.Do(ctx, fn)
		},
		func(ctx context.Context, attempt int) error {
			m.deps.Metrics.CallRetried(method)
			m.deps.Logger.Warn(fmt.Sprintf("lost connection to engine on %s during %s, restarting (attempt %d)", key, method, attempt))
			return m.restartEngine(ctx, key)
		},
	)
	if err != nil && domain.IsConnectionLoss(err) {
		m.RemoveFailedEngine(key)
	}
	return err
}

// noRestart runs a call that must reach the current engine: nothing is
// launched and nothing is retried.
func (m *Manager) noRestart(ctx context.Context, key domain.EngineKey, method string, fn callFunc) (err error) {
	ctx, span := m.deps.Tracer.Start(ctx, method, ports.WithAttribute("key", key.String()))
	defer span.End()

	s, ok := m.registry.Get(key)
	if !ok {
		err = zerr.With(zerr.Wrap(domain.ErrNoEngine, method), "key", key.String())
		span.RecordError(err)
		return err
	}
	if err = s.Do(ctx, fn); err != nil {
		span.RecordError(err)
		if domain.IsConnectionLoss(err) {
			m.RemoveFailedEngine(key)
		}
	}
	return err
}

func (m *Manager) ensureEngine(ctx context.Context, key domain.EngineKey) error {
	m.mu.Lock()
	_, known := m.restart[key]
	m.mu.Unlock()

	if known {
		return m.relaunch(ctx, key)
	}
	return m.CreateEngine(ctx, key, nil)
}

// restartEngine closes the engine for key and starts it again. Windows are
// told that the old networks are gone.
func (m *Manager) restartEngine(ctx context.Context, key domain.EngineKey) error {
	if err := m.registry.Close(key); err != nil {
		m.deps.Logger.Warn(fmt.Sprintf("closing engine on %s before restart: %v", key, err))
	}
	m.deps.Notifier.InvalidateNetworks(key)
	if err := m.relaunch(ctx, key); err != nil {
		m.sessionsChanged()
		return err
	}
	return nil
}

// OpenDatabase opens a database on the engine for key.
func (m *Manager) OpenDatabase(ctx context.Context, key domain.EngineKey, req domain.OpenDatabaseRequest) error {
	return m.withRestart(ctx, key, "OpenDatabase", func(ctx context.Context, p ports.EngineProxy) error {
		return p.OpenDatabase(ctx, req)
	})
}

// ApplyOperator adds an operator to the network being built on key.
func (m *Manager) ApplyOperator(ctx context.Context, key domain.EngineKey, req domain.ApplyOperatorRequest) error {
	return m.withRestart(ctx, key, "ApplyOperator", func(ctx context.Context, p ports.EngineProxy) error {
		return p.ApplyOperator(ctx, req)
	})
}

// MakePlot finishes the network being built on key and returns its id.
func (m *Manager) MakePlot(ctx context.Context, key domain.EngineKey, req domain.MakePlotRequest) (int, error) {
	var id int
	err := m.withRestart(ctx, key, "MakePlot", func(ctx context.Context, p ports.EngineProxy) error {
		var err error
		id, err = p.MakePlot(ctx, req)
		return err
	})
	return id, err
}

// Execute runs a network on key.
func (m *Manager) Execute(ctx context.Context, key domain.EngineKey, networkID int) (domain.ExecuteResult, error) {
	var res domain.ExecuteResult
	err := m.withRestart(ctx, key, "Execute", func(ctx context.Context, p ports.EngineProxy) error {
		var err error
		res, err = p.Execute(ctx, networkID)
		return err
	})
	return res, err
}

// Render renders networks on key.
func (m *Manager) Render(ctx context.Context, key domain.EngineKey, req domain.RenderRequest) (domain.RenderResult, error) {
	var res domain.RenderResult
	err := m.withRestart(ctx, key, "Render", func(ctx context.Context, p ports.EngineProxy) error {
		var err error
		res, err = p.Render(ctx, req)
		return err
	})
	return res, err
}

// ClearCache drops cached data on key.
func (m *Manager) ClearCache(ctx context.Context, key domain.EngineKey, req domain.ClearCacheRequest) error {
	return m.withRestart(ctx, key, "ClearCache", func(ctx context.Context, p ports.EngineProxy) error {
		return p.ClearCache(ctx, req)
	})
}

// Pick returns values at one element of a network on key.
func (m *Manager) Pick(ctx context.Context, key domain.EngineKey, req domain.PickRequest) (domain.PickResult, error) {
	var res domain.PickResult
	err := m.noRestart(ctx, key, "Pick", func(ctx context.Context, p ports.EngineProxy) error {
		var err error
		res, err = p.Pick(ctx, req)
		return err
	})
	return res, err
}

// Query runs a named query on key.
func (m *Manager) Query(ctx context.Context, key domain.EngineKey, req domain.QueryRequest) (domain.QueryResult, error) {
	var res domain.QueryResult
	err := m.noRestart(ctx, key, "Query", func(ctx context.Context, p ports.EngineProxy) error {
		var err error
		res, err = p.Query(ctx, req)
		return err
	})
	return res, err
}

// ReleaseData frees the data of a network on key.
func (m *Manager) ReleaseData(ctx context.Context, key domain.EngineKey, networkID int) error {
	return m.noRestart(ctx, key, "ReleaseData", func(ctx context.Context, p ports.EngineProxy) error {
		return p.ReleaseData(ctx, networkID)
	})
}

// LaunchProcess asks the engine for key to start a process.
func (m *Manager) LaunchProcess(ctx context.Context, key domain.EngineKey, req domain.ProcessLaunchRequest) error {
	return m.noRestart(ctx, key, "LaunchProcess", func(ctx context.Context, p ports.EngineProxy) error {
		return p.LaunchProcess(ctx, req)
	})
}
