package localengine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/visit/internal/adapters/launcher"
	"go.trai.ch/visit/internal/adapters/logger"
	"go.trai.ch/visit/internal/core/ports"
)

// NodeID is the unique identifier for the local engine factory Graft node.
const NodeID graft.ID = "adapter.localengine"

// Factory builds engines once the serve flags are known.
type Factory struct {
	Spawner ports.ProcessLauncher
	Logger  ports.Logger
}

// New returns an engine for opts. Unset spawner and logger come from f.
func (f *Factory) New(opts Options) (*Engine, error) {
	if opts.Spawner == nil {
		opts.Spawner = f.Spawner
	}
	if opts.Logger == nil {
		opts.Logger = f.Logger
	}
	return New(opts)
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
			return &Factory{Spawner: launcher.LocalProcess{}, Logger: log}, nil
		},
	})
}
