package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the sleep state Graft node.
const NodeID graft.ID = "adapter.sleep_state"

func init() {
	graft.Register(graft.Node[ports.SleepStateStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SleepStateStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.StateFile, log), nil
		},
	})
}
