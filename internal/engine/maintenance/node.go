package maintenance

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/pathcache" //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the maintenance Graft node.
const NodeID graft.ID = "engine.maintenance"

func init() {
	graft.Register(graft.Node[*Maintainer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, pathcache.NodeID, fs.FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Maintainer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.PathCache](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cache, fsys, log, cfg.BaseDir), nil
		},
	})
}
