// Package app implements the application layer for visit.
package app

import (
	"context"
	"errors"

	"go.trai.ch/visit/internal/adapters/localengine"
	"go.trai.ch/visit/internal/adapters/telemetry"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/visit/internal/engine/dispatch"
	"go.trai.ch/visit/internal/engine/fileserver"
	"go.trai.ch/zerr"
)

// LauncherFactory returns the launcher for an engine configuration.
type LauncherFactory func(cfg domain.EngineConfig) (ports.Launcher, error)

// Deps are the collaborators of an App. Provider and Chooser may be nil.
type Deps struct {
	Loader    ports.ConfigLoader
	Launchers LauncherFactory
	Provider  ports.LauncherProvider
	Chooser   ports.ProfileChooser
	Profiles  ports.ProfileCache
	Notifier  ports.Notifier
	Logger    ports.Logger
	Tracer    ports.Tracer
	Metrics   *telemetry.Metrics
	Progress  ports.Progress
	Watcher   ports.Watcher
	Engines   *localengine.Factory
}

// App represents the main application logic.
type App struct {
	deps Deps
	cwd  string
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps, cwd: "."}
}

// WithWorkDir sets the directory the configuration is loaded from.
func (a *App) WithWorkDir(dir string) *App {
	a.cwd = dir
	return a
}

// Session is one client: its configuration, metadata servers and engines.
type Session struct {
	Config  *domain.Config
	Files   *fileserver.List
	Engines *dispatch.Manager
}

// Open loads the configuration and builds a client session. Nothing is
// launched until a call needs it.
func (a *App) Open() (*Session, error) {
	cfg, err := a.deps.Loader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	launcher, err := a.deps.Launchers(cfg.Engine)
	if err != nil {
		return nil, err
	}

	files, err := fileserver.New(cfg, fileserver.Deps{
		Launcher: launcher,
		Notifier: a.deps.Notifier,
		Logger:   a.deps.Logger,
		Tracer:   a.deps.Tracer,
		Metrics:  a.deps.Metrics,
	})
	if err != nil {
		return nil, err
	}

	engines := dispatch.NewManager(cfg, dispatch.Deps{
		Launcher: launcher,
		Provider: a.deps.Provider,
		Batch:    files,
		Chooser:  a.deps.Chooser,
		Profiles: a.deps.Profiles,
		Notifier: a.deps.Notifier,
		Logger:   a.deps.Logger,
		Tracer:   a.deps.Tracer,
		Metrics:  a.deps.Metrics,
		Progress: a.deps.Progress,
	})

	return &Session{Config: cfg, Files: files, Engines: engines}, nil
}

// Close shuts down every engine and metadata server of s.
func (s *Session) Close(ctx context.Context) error {
	return errors.Join(s.Engines.CloseEngines(ctx), s.Files.CloseAllServers())
}

// closeSession closes s and keeps the first error.
func (a *App) closeSession(ctx context.Context, s *Session, err *error) {
	if cerr := s.Close(context.WithoutCancel(ctx)); cerr != nil {
		if *err == nil {
			*err = cerr
			return
		}
		a.deps.Logger.Warn("closing session: " + cerr.Error())
	}
}
