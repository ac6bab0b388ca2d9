package ports

import "go.stonic.dev/stonic/internal/core/domain"

// PathCache remembers which absolute path a normalized query resolved to.
// Mutations are persisted immediately; persistence failures are logged, not returned.
//
//go:generate mockgen -source=path_cache.go -destination=mocks/mock_path_cache.go -package=mocks
type PathCache interface {
	// Get returns the cached path for key if it is within TTL and still exists.
	// Stale entries are evicted and reported as a miss.
	Get(key string) (string, bool)

	// Put inserts or overwrites the entry for key.
	Put(key, path string)

	// RemoveByValue removes every entry pointing at path and returns how many were removed.
	RemoveByValue(path string) int

	// RemoveWithin removes every entry pointing strictly inside dir.
	RemoveWithin(dir string) int

	// ReplaceValue repoints every entry at oldPath to newPath, keeping keys.
	ReplaceValue(oldPath, newPath string) int

	// Clear drops all entries and starts a new store generation.
	Clear()

	// Len returns the number of entries, stale or not.
	Len() int

	// Entries returns a snapshot of all entries sorted by key.
	Entries() []domain.CacheEntry
}
