// Package app implements the application layer for stonic.
package app

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.stonic.dev/stonic/internal/adapters/toolserver"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.stonic.dev/stonic/internal/engine/maintenance"
	"go.stonic.dev/stonic/internal/engine/resolver"
	"golang.org/x/sync/errgroup"
)

var _ toolserver.Assistant = (*App)(nil)

// Options tune the App.
type Options struct {
	// Watch runs the cache watcher next to the tool server.
	Watch bool
	// Version is announced to MCP clients.
	Version string
}

// App represents the main application logic.
type App struct {
	resolver   *resolver.Resolver
	maintainer *maintenance.Maintainer
	cache      ports.PathCache
	launcher   ports.Launcher
	state      ports.SleepStateStore
	watcher    ports.Watcher
	logger     ports.Logger
	opts       Options
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	maint *maintenance.Maintainer,
	cache ports.PathCache,
	launcher ports.Launcher,
	state ports.SleepStateStore,
	watcher ports.Watcher,
	log ports.Logger,
	opts Options,
) *App {
	return &App{
		resolver:   res,
		maintainer: maint,
		cache:      cache,
		launcher:   launcher,
		state:      state,
		watcher:    watcher,
		logger:     log,
		opts:       opts,
	}
}

// Resolve finds the file or folder query names.
func (a *App) Resolve(ctx context.Context, query string) (domain.Resolution, error) {
	return a.resolver.Resolve(ctx, query)
}

// Open resolves query and opens the result.
func (a *App) Open(ctx context.Context, query string) (domain.Resolution, error) {
	res, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		return domain.Resolution{}, err
	}
	if err := a.launcher.Open(ctx, res.Item); err != nil {
		return domain.Resolution{}, err
	}
	return res, nil
}

// Rename resolves query and renames the result to newName.
func (a *App) Rename(ctx context.Context, query, newName string) (domain.Item, error) {
	res, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		return domain.Item{}, err
	}
	return a.maintainer.Rename(res.Path, newName)
}

// Delete resolves query and deletes the result.
func (a *App) Delete(ctx context.Context, query string, recursive bool) (domain.Item, error) {
	res, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		return domain.Item{}, err
	}
	return a.maintainer.Delete(res.Path, recursive)
}

// CreateFolder creates a folder under the base directory.
func (a *App) CreateFolder(_ context.Context, name string) (domain.Item, error) {
	return a.maintainer.CreateFolder(name)
}

// RefreshCache forgets every cached path.
func (a *App) RefreshCache(_ context.Context) int {
	return a.maintainer.Refresh()
}

// CachedPaths lists the cache entries ordered by key.
func (a *App) CachedPaths() []domain.CacheEntry {
	return a.cache.Entries()
}

// Launch starts an application by spoken name.
func (a *App) Launch(ctx context.Context, app string) (string, error) {
	return a.launcher.Launch(ctx, app)
}

// Sleeping reports the sleep state.
func (a *App) Sleeping() bool {
	return a.state.Sleeping()
}

// SetSleeping stores the sleep state.
func (a *App) SetSleeping(sleeping bool) error {
	return a.state.SetSleeping(sleeping)
}

// SleepStatus returns the spoken status of the sleep gate.
func (a *App) SleepStatus() string {
	return domain.SleepStatus(a.state.Sleeping())
}

// ProcessSleepIntent applies a spoken sleep or wake phrase. Going to sleep
// replies with nothing; waking up replies with domain.WakeReply.
func (a *App) ProcessSleepIntent(text string) (string, error) {
	switch domain.ClassifySleepIntent(text) {
	case domain.IntentSleep:
		return "", a.state.SetSleeping(true)
	case domain.IntentWake:
		if err := a.state.SetSleeping(false); err != nil {
			return "", err
		}
		return domain.WakeReply, nil
	default:
		return "", nil
	}
}

// Serve runs the MCP tool server on t and, when enabled, the cache watcher.
// It returns once the client disconnects or ctx is done.
func (a *App) Serve(ctx context.Context, t mcp.Transport) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	srv := toolserver.New(a, a.logger, a.opts.Version)

	if a.opts.Watch && a.watcher != nil {
		g.Go(func() error {
			return a.watcher.Watch(ctx)
		})
	}

	g.Go(func() error {
		// The watcher has nothing to do once the client is gone.
		defer cancel()
		err := srv.Run(ctx, t)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}
