// Package watcher evicts path cache entries when their files are removed or
// renamed by other programs.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	// DefaultResyncInterval is how often the watched set follows new cache entries.
	DefaultResyncInterval = 30 * time.Second
	// DefaultDebounceWindow coalesces the events of one bulk move or delete.
	DefaultDebounceWindow = 50 * time.Millisecond
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithResyncInterval sets how often the watched directories are recomputed.
func WithResyncInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.resync = d
	}
}

// WithDebounceWindow sets the window used to batch evictions.
func WithDebounceWindow(d time.Duration) Option {
	return func(w *Watcher) {
		w.window = d
	}
}

// Watcher watches the parent directories of cached paths with fsnotify.
type Watcher struct {
	cache  ports.PathCache
	logger ports.Logger
	resync time.Duration
	window time.Duration
	ready  chan struct{}
}

// New creates a Watcher for cache.
func New(cache ports.PathCache, logger ports.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		cache:  cache,
		logger: logger,
		resync: DefaultResyncInterval,
		window: DefaultDebounceWindow,
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready is closed once the first set of directories is watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() {
		_ = fsw.Close()
	}()

	debouncer := NewDebouncer(w.window, w.evict)
	defer debouncer.Flush()

	watched := make(map[string]struct{})
	w.sync(fsw, watched)
	close(w.ready)

	ticker := time.NewTicker(w.resync)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sync(fsw, watched)
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				debouncer.Add(filepath.Clean(event.Name))
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// sync makes the watched set equal to the parents of the cached paths.
func (w *Watcher) sync(fsw *fsnotify.Watcher, watched map[string]struct{}) {
	want := make(map[string]struct{})
	for _, entry := range w.cache.Entries() {
		want[filepath.Dir(entry.Path)] = struct{}{}
	}

	for dir := range watched {
		if _, ok := want[dir]; ok {
			continue
		}
		// The directory may already be gone, which also drops the watch.
		_ = fsw.Remove(dir)
		delete(watched, dir)
	}

	for dir := range want {
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			w.logger.Debug("cannot watch directory", "dir", dir, "error", err)
			continue
		}
		watched[dir] = struct{}{}
	}

	w.logger.Debug("watching cached directories", "dirs", len(watched))
}

// evict drops cache entries for paths that no longer exist.
func (w *Watcher) evict(paths []string) {
	for _, path := range paths {
		if _, err := os.Lstat(path); !errors.Is(err, fs.ErrNotExist) {
			// Replaced in place or still there.
			continue
		}
		n := w.cache.RemoveByValue(path) + w.cache.RemoveWithin(path)
		if n > 0 {
			w.logger.Info("evicted cache entries", "path", path, "entries", n)
		}
	}
}
