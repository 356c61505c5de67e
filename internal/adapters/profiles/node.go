package profiles

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/visit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the launch profile cache Graft node.
	NodeID graft.ID = "adapter.profile_cache"
	// ChooserNodeID is the unique identifier for the profile chooser Graft node.
	ChooserNodeID graft.ID = "adapter.profile_chooser"
)

func init() {
	graft.Register(graft.Node[ports.ProfileCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileCache, error) {
			store, err := NewDefaultStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.ProfileChooser]{
		ID:        ChooserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileChooser, error) {
			return FirstChooser{}, nil
		},
	})
}
