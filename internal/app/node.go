package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/visit/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/launcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/localengine" //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/notifier"    //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/profiles"    //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/adapters/watcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is what the CLI needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
	// Output is the concrete logger, for switching its format.
	Output *logger.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			launcher.NodeID,
			launcher.ProviderNodeID,
			profiles.NodeID,
			profiles.ChooserNodeID,
			notifier.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			telemetry.ProgressNodeID,
			watcher.NodeID,
			localengine.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			logger.ConcreteNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			out, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Output: out}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	factory, err := graft.Dep[*launcher.Factory](ctx)
	if err != nil {
		return nil, err
	}
	provider, err := graft.Dep[ports.LauncherProvider](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[ports.ProfileCache](ctx)
	if err != nil {
		return nil, err
	}
	chooser, err := graft.Dep[ports.ProfileChooser](ctx)
	if err != nil {
		return nil, err
	}
	notify, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	metrics, err := graft.Dep[*telemetry.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	progress, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}
	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	engines, err := graft.Dep[*localengine.Factory](ctx)
	if err != nil {
		return nil, err
	}

	launchers := func(cfg domain.EngineConfig) (ports.Launcher, error) {
		l, err := factory.New(cfg)
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	return New(Deps{
		Loader:    loader,
		Launchers: launchers,
		Provider:  provider,
		Chooser:   chooser,
		Profiles:  cache,
		Notifier:  notify,
		Logger:    log,
		Tracer:    tracer,
		Metrics:   metrics,
		Progress:  progress,
		Watcher:   watch,
		Engines:   engines,
	}), nil
}
