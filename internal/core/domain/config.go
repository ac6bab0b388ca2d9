package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Scorer names accepted in the configuration.
const (
	ScorerWeighted    = "weighted"
	ScorerRatio       = "ratio"
	ScorerTokenSort   = "token_sort"
	ScorerTokenSet    = "token_set"
	ScorerJaroWinkler = "jaro_winkler"
)

// DefaultScorer is used when the configuration does not name one.
const DefaultScorer = ScorerWeighted

// Config is the validated runtime configuration.
type Config struct {
	// Roots are searched in order; earlier roots win exact matches.
	Roots     []string
	MaxDepth  int
	Threshold int
	Scorer    string
	CacheFile string
	CacheTTL  time.Duration
	StateFile string
	// BaseDir is where create_folder puts new folders.
	BaseDir   string
	Watch     bool
	TraceFile string
	// Apps maps spoken application names to commands.
	Apps map[string]string
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "max_depth must be at least 1"), "max_depth", c.MaxDepth)
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "threshold must be between 0 and 100"), "threshold", c.Threshold)
	}
	if c.CacheTTL <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "cache ttl must be positive"), "ttl", c.CacheTTL.String())
	}
	switch c.Scorer {
	case ScorerWeighted, ScorerRatio, ScorerTokenSort, ScorerTokenSet, ScorerJaroWinkler:
	default:
		return zerr.With(zerr.Wrap(ErrUnknownScorer, ""), "scorer", c.Scorer)
	}
	return nil
}
