package pathcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the path cache Graft node.
const NodeID graft.ID = "adapter.path_cache"

func init() {
	graft.Register(graft.Node[ports.PathCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PathCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheFile, log, WithTTL(cfg.CacheTTL)), nil
		},
	})
}
