package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/fuzzy"     //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/pathcache" //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pathcache.NodeID,
			fs.WalkerNodeID,
			fs.FileSystemNodeID,
			fuzzy.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.PathCache](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			scorer, err := graft.Dep[ports.Scorer](ctx)
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

			return New(cache, walker, scorer, fsys, log, tracer, Options{
				Roots:     cfg.Roots,
				MaxDepth:  cfg.MaxDepth,
				Threshold: cfg.Threshold,
			}), nil
		},
	})
}
