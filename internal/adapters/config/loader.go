// Package config loads the stonic configuration from YAML, a .env file and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvConfig    = "STONIC_CONFIG"
	EnvCacheFile = "STONIC_CACHE_FILE"
	EnvCacheTTL  = "STONIC_CACHE_TTL"
	EnvStateFile = "STONIC_STATE_FILE"
	EnvRoots     = "STONIC_ROOTS"
	EnvMaxDepth  = "STONIC_MAX_DEPTH"
	EnvThreshold = "STONIC_THRESHOLD"
	EnvScorer    = "STONIC_SCORER"
	EnvBaseDir   = "STONIC_BASE_DIR"
	EnvWatch     = "STONIC_WATCH"
	EnvTraceFile = "STONIC_TRACE_FILE"
)

// DotEnvFile is read from the working directory before the environment is consulted.
const DotEnvFile = ".env"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Loader implements ports.ConfigLoader.
type Loader struct {
	home   string
	lookup LookupFunc
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader that expands ~ to home and reads variables through lookup.
func NewLoader(home string, lookup LookupFunc) *Loader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Loader{home: home, lookup: lookup}
}

// NewDefaultLoader creates a Loader for the current user. Variables from the
// process environment win over those in the .env file at dotenvPath.
func NewDefaultLoader(dotenvPath string) (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine home directory")
	}

	dotenv, err := ReadDotEnv(dotenvPath)
	if err != nil {
		return nil, err
	}

	return NewLoader(home, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}), nil
}

// ReadDotEnv parses a .env file without touching the process environment.
// A missing file yields no values.
func ReadDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read .env file"), "path", path)
	}
	return values, nil
}

// ConfigPath returns $STONIC_CONFIG, or stonic.yaml under the XDG config directory.
func (l *Loader) ConfigPath() string {
	if p, ok := l.lookup(EnvConfig); ok && p != "" {
		return l.expand(p)
	}
	return domain.DefaultConfigPath(l.xdgDir("XDG_CONFIG_HOME", ".config"))
}

// Defaults returns the configuration used when no file is present.
func (l *Loader) Defaults() *domain.Config {
	return &domain.Config{
		Roots:     domain.DefaultRoots(l.home),
		MaxDepth:  domain.DefaultMaxDepth,
		Threshold: domain.DefaultThreshold,
		Scorer:    domain.DefaultScorer,
		CacheFile: domain.DefaultCachePath(l.xdgDir("XDG_CACHE_HOME", ".cache")),
		CacheTTL:  domain.DefaultCacheTTL,
		StateFile: domain.DefaultStatePath(l.home),
		BaseDir:   domain.DefaultBaseDir(l.home),
		Watch:     true,
		Apps:      map[string]string{},
	}
}

// Load reads the YAML file at path, applies environment overrides and validates the result.
// A missing file is not an error.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := l.Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		var file Stonicfile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		if err := l.applyFile(cfg, &file); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := absolutize(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// absolutize resolves relative paths against the working directory once, so
// walked and cached paths stay valid when the process changes directory.
func absolutize(cfg *domain.Config) error {
	for i, root := range cfg.Roots {
		abs, err := absPath(root)
		if err != nil {
			return err
		}
		cfg.Roots[i] = abs
	}

	for _, p := range []*string{&cfg.CacheFile, &cfg.StateFile, &cfg.BaseDir, &cfg.TraceFile} {
		if *p == "" {
			continue
		}
		abs, err := absPath(*p)
		if err != nil {
			return err
		}
		*p = abs
	}
	return nil
}

func absPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "path", p)
	}
	return abs, nil
}

func (l *Loader) applyFile(cfg *domain.Config, file *Stonicfile) error {
	if len(file.Roots) > 0 {
		cfg.Roots = l.expandAll(file.Roots)
	}
	if file.MaxDepth != nil {
		cfg.MaxDepth = *file.MaxDepth
	}
	if file.Threshold != nil {
		cfg.Threshold = *file.Threshold
	}
	if file.Scorer != "" {
		cfg.Scorer = file.Scorer
	}
	if file.Cache.File != "" {
		cfg.CacheFile = l.expand(file.Cache.File)
	}
	if file.Cache.TTL != "" {
		ttl, err := time.ParseDuration(file.Cache.TTL)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "cache.ttl", file.Cache.TTL)
		}
		cfg.CacheTTL = ttl
	}
	if file.StateFile != "" {
		cfg.StateFile = l.expand(file.StateFile)
	}
	if file.BaseDir != "" {
		cfg.BaseDir = l.expand(file.BaseDir)
	}
	if file.Watch != nil {
		cfg.Watch = *file.Watch
	}
	if file.TraceFile != "" {
		cfg.TraceFile = l.expand(file.TraceFile)
	}
	for name, cmd := range file.Apps {
		cfg.Apps[domain.NormalizeQuery(name)] = cmd
	}
	return nil
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	if v, ok := l.env(EnvRoots); ok {
		cfg.Roots = l.expandAll(filepath.SplitList(v))
	}
	if v, ok := l.env(EnvCacheFile); ok {
		cfg.CacheFile = l.expand(v)
	}
	if v, ok := l.env(EnvStateFile); ok {
		cfg.StateFile = l.expand(v)
	}
	if v, ok := l.env(EnvBaseDir); ok {
		cfg.BaseDir = l.expand(v)
	}
	if v, ok := l.env(EnvTraceFile); ok {
		cfg.TraceFile = l.expand(v)
	}
	if v, ok := l.env(EnvScorer); ok {
		cfg.Scorer = v
	}

	if v, ok := l.env(EnvMaxDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), EnvMaxDepth, v)
		}
		cfg.MaxDepth = n
	}
	if v, ok := l.env(EnvThreshold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), EnvThreshold, v)
		}
		cfg.Threshold = n
	}
	if v, ok := l.env(EnvCacheTTL); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), EnvCacheTTL, v)
		}
		cfg.CacheTTL = ttl
	}
	if v, ok := l.env(EnvWatch); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), EnvWatch, v)
		}
		cfg.Watch = b
	}
	return nil
}

// env returns a non-empty variable.
func (l *Loader) env(key string) (string, bool) {
	v, ok := l.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (l *Loader) xdgDir(key, fallback string) string {
	if v, ok := l.env(key); ok {
		return v
	}
	return filepath.Join(l.home, fallback)
}

// expand replaces a leading ~ with the home directory and cleans the path.
func (l *Loader) expand(p string) string {
	p = strings.TrimSpace(p)
	switch {
	case p == "~":
		p = l.home
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, `~\`):
		p = filepath.Join(l.home, p[2:])
	}
	return filepath.Clean(p)
}

func (l *Loader) expandAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, l.expand(p))
	}
	return out
}
