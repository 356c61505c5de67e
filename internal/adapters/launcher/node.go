package launcher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/visit/internal/adapters/logger"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the launcher factory Graft node.
	NodeID graft.ID = "adapter.launcher"
	// ProviderNodeID is the unique identifier for the remote launcher provider Graft node.
	ProviderNodeID graft.ID = "adapter.launcher.provider"
)

// Factory builds launchers once the engine configuration is known.
type Factory struct {
	LogPath string
	Logger  ports.Logger
	Options []Option
}

// New returns a launcher for cfg.
func (f *Factory) New(cfg domain.EngineConfig) (*Launcher, error) {
	return New(cfg, f.LogPath, f.Logger, f.Options...)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine home directory")
			}
			return &Factory{LogPath: domain.DefaultEngineLogPath(home), Logger: log}, nil
		},
	})

	graft.Register(graft.Node[ports.LauncherProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LauncherProvider, error) {
			return Provider{}, nil
		},
	})
}
