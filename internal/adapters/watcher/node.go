package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/adapters/pathcache"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the cache watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pathcache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			cache, err := graft.Dep[ports.PathCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, log), nil
		},
	})
}
