package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stonic.dev/stonic/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/pathcache" //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.stonic.dev/stonic/internal/build"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.stonic.dev/stonic/internal/engine/maintenance"
	"go.stonic.dev/stonic/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			maintenance.NodeID,
			pathcache.NodeID,
			shell.NodeID,
			state.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	maint, err := graft.Dep[*maintenance.Maintainer](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.PathCache](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SleepStateStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(res, maint, cache, launcher, store, w, log, Options{
		Watch:   cfg.Watch,
		Version: build.Version,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: provider,
	}, nil
}
