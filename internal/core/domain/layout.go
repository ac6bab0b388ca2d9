package domain

import (
	"path/filepath"
	"time"
)

const (
	// AppName is the name used for config, cache and state directories.
	AppName = "stonic"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "stonic.yaml"

	// CacheFileName is the name of the persisted path cache.
	CacheFileName = "path_cache.json"

	// StateFileName is the name of the sleep state file.
	StateFileName = "sleep_state.json"

	// DefaultMaxDepth is how many directory levels below a root are scanned.
	DefaultMaxDepth = 3

	// DefaultThreshold is the fuzzy score a candidate must exceed to be accepted.
	DefaultThreshold = 70

	// DefaultCacheTTL is how long a cache entry stays valid.
	DefaultCacheTTL = 24 * time.Hour

	// HiddenPrefix marks entries the walker never visits.
	HiddenPrefix = "."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the config file location under configDir.
// It joins configDir, stonic and stonic.yaml.
func DefaultConfigPath(configDir string) string {
	return filepath.Join(configDir, AppName, ConfigFileName)
}

// DefaultCachePath returns the path cache location under cacheDir.
func DefaultCachePath(cacheDir string) string {
	return filepath.Join(cacheDir, AppName, CacheFileName)
}

// DefaultStatePath returns the sleep state location under home.
// It joins home, .local/state, stonic and sleep_state.json.
func DefaultStatePath(home string) string {
	return filepath.Join(home, ".local", "state", AppName, StateFileName)
}

// DefaultRoots returns the search roots in priority order.
func DefaultRoots(home string) []string {
	return []string{
		home,
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Downloads"),
	}
}

// DefaultBaseDir returns the directory new folders are created in.
func DefaultBaseDir(home string) string {
	return filepath.Join(home, "Desktop")
}
