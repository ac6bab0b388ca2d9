// Package pathcache implements the persisted query-to-path cache.
package pathcache

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTTL sets how long entries stay valid.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// Store implements ports.PathCache on top of a single JSON file.
type Store struct {
	path   string
	ttl    time.Duration
	now    func() time.Time
	logger ports.Logger

	mu         sync.Mutex
	generation time.Time
	entries    map[string]domain.CacheEntry
}

var _ ports.PathCache = (*Store)(nil)

// NewStore loads the cache file at path. A missing, corrupt or expired file yields an empty cache.
func NewStore(path string, logger ports.Logger, opts ...Option) *Store {
	s := &Store{
		path:   filepath.Clean(path),
		ttl:    domain.DefaultCacheTTL,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		s.logger.Warn("could not load path cache, starting empty", "path", s.path, "error", err.Error())
		s.generation = s.now()
		s.entries = make(map[string]domain.CacheEntry)
	}
	return s
}

func (s *Store) load() error {
	now := s.now()
	s.generation = now
	s.entries = make(map[string]domain.CacheEntry)

	//nolint:gosec // Path is cleaned and comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var file domain.CacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error())
	}

	ts, err := domain.ParseCacheTimestamp(file.Timestamp)
	if err != nil {
		return err
	}

	if age := now.Sub(ts); age >= s.ttl {
		s.logger.Info("path cache expired, rebuilding", "age", age.Round(time.Second).String())
		return nil
	}

	s.generation = ts
	for key, path := range file.Paths {
		s.entries[key] = domain.CacheEntry{Key: key, Path: path, RecordedAt: ts}
	}
	s.logger.Debug("loaded path cache", "entries", len(s.entries))
	return nil
}

// Get returns the path cached for key if the entry is fresh and the path exists.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}

	if entry.Expired(s.now(), s.ttl) {
		delete(s.entries, key)
		s.logger.Debug("evicted expired cache entry", "key", key)
		s.persist()
		return "", false
	}

	if _, err := os.Stat(entry.Path); err != nil {
		delete(s.entries, key)
		s.logger.Debug("evicted cache entry for missing path", "key", key, "path", entry.Path)
		s.persist()
		return "", false
	}

	return entry.Path, true
}

// Put stores path under key.
func (s *Store) Put(key, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = domain.CacheEntry{Key: key, Path: path, RecordedAt: s.now()}
	s.persist()
}

// RemoveByValue drops every entry pointing at path.
func (s *Store) RemoveByValue(path string) int {
	path = filepath.Clean(path)
	return s.removeIf(func(p string) bool {
		return p == path
	})
}

// RemoveWithin drops every entry pointing strictly inside dir.
func (s *Store) RemoveWithin(dir string) int {
	return s.removeIf(func(p string) bool {
		return domain.IsWithin(p, dir)
	})
}

func (s *Store) removeIf(match func(path string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if match(filepath.Clean(entry.Path)) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed > 0 {
		s.persist()
	}
	return removed
}

// ReplaceValue repoints entries at oldPath to newPath.
func (s *Store) ReplaceValue(oldPath, newPath string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	oldPath = filepath.Clean(oldPath)
	replaced := 0
	for key, entry := range s.entries {
		if filepath.Clean(entry.Path) == oldPath {
			entry.Path = newPath
			s.entries[key] = entry
			replaced++
		}
	}
	if replaced > 0 {
		s.persist()
	}
	return replaced
}

// Clear drops all entries and starts a new generation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]domain.CacheEntry)
	s.generation = s.now()
	s.persist()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns all entries sorted by key.
func (s *Store) Entries() []domain.CacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CacheEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.CacheEntry) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// persist writes the cache and logs failures. Callers hold mu.
func (s *Store) persist() {
	if err := s.write(); err != nil {
		s.logger.Warn("could not save path cache", "path", s.path, "error", err.Error())
	}
}

// roll starts a new generation once the current one is older than the TTL,
// dropping entries that expired with it. Callers hold mu.
func (s *Store) roll(now time.Time) {
	if now.Sub(s.generation) < s.ttl {
		return
	}

	oldest := now
	for key, e := range s.entries {
		if e.Expired(now, s.ttl) {
			delete(s.entries, key)
			continue
		}
		if e.RecordedAt.Before(oldest) {
			oldest = e.RecordedAt
		}
	}
	s.generation = oldest
}

func (s *Store) write() error {
	s.roll(s.now())

	file := domain.CacheFile{
		Timestamp: domain.FormatCacheTimestamp(s.generation),
		Paths:     make(map[string]string, len(s.entries)),
	}
	for key, e := range s.entries {
		file.Paths[key] = e.Path
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, ".path_cache-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}
