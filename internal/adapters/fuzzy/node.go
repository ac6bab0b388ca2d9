package fuzzy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the scorer Graft node.
const NodeID graft.ID = "adapter.fuzzy"

func init() {
	graft.Register(graft.Node[ports.Scorer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Scorer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			scorer, err := New(cfg.Scorer)
			if err != nil {
				return nil, err
			}
			return scorer, nil
		},
	})
}
