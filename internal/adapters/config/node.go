package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := NewDefaultLoader(DotEnvFile)
			if err != nil {
				return nil, err
			}

			path := loader.ConfigPath()
			cfg, err := loader.Load(path)
			if err != nil {
				return nil, err
			}
			log.Debug("loaded config", "path", path, "roots", len(cfg.Roots), "scorer", cfg.Scorer)
			return cfg, nil
		},
	})
}
