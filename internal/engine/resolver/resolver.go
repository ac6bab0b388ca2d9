// Package resolver turns a spoken name into one file or folder.
//
// Lookups go through the path cache first. On a miss the search roots are
// walked in priority order: the first root holding an entry whose name equals
// the query wins outright. Without an exact match every candidate of every
// root is scored against the query and the best one is accepted only when its
// score is strictly above the threshold. Accepted answers are cached.
package resolver

import (
	"context"
	"path/filepath"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the search parameters of a Resolver.
type Options struct {
	// Roots are walked in order.
	Roots []string
	// MaxDepth counts levels below a root; entries directly under it are level 0.
	MaxDepth int
	// Threshold is the exclusive lower bound for fuzzy scores.
	Threshold int
}

// Resolver implements the cache-then-walk lookup.
type Resolver struct {
	cache  ports.PathCache
	walker ports.Walker
	scorer ports.Scorer
	fsys   ports.FileSystem
	logger ports.Logger
	tracer ports.Tracer
	opts   Options
}

// New creates a Resolver.
func New(
	cache ports.PathCache,
	walker ports.Walker,
	scorer ports.Scorer,
	fsys ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Resolver {
	if opts.MaxDepth < 1 {
		opts.MaxDepth = domain.DefaultMaxDepth
	}
	roots := make([]string, 0, len(opts.Roots))
	for _, root := range opts.Roots {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		roots = append(roots, root)
	}
	opts.Roots = roots
	return &Resolver{
		cache:  cache,
		walker: walker,
		scorer: scorer,
		fsys:   fsys,
		logger: logger,
		tracer: tracer,
		opts:   opts,
	}
}

// Resolve finds the entry query names. It returns domain.ErrNotFound when
// nothing matches well enough.
func (r *Resolver) Resolve(ctx context.Context, query string) (domain.Resolution, error) {
	key := domain.NormalizeQuery(query)
	if key == "" {
		return domain.Resolution{}, domain.ErrNotFound
	}

	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("query", key)

	res, err := r.resolve(ctx, key, span)
	if err != nil {
		span.SetAttribute("outcome", "not_found")
		span.RecordError(err)
		return domain.Resolution{}, err
	}

	span.SetAttribute("outcome", res.Source.String())
	span.SetAttribute("path", res.Path)
	span.SetAttribute("score", res.Score)
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, key string, span ports.Span) (domain.Resolution, error) {
	if res, ok := r.fromCache(key); ok {
		return res, nil
	}

	if len(r.opts.Roots) == 0 {
		r.logger.Debug("no search roots configured")
		return domain.Resolution{}, notFound(key)
	}

	var pool []domain.Item
	for _, root := range r.opts.Roots {
		if err := ctx.Err(); err != nil {
			return domain.Resolution{}, zerr.With(zerr.Wrap(err, domain.ErrResolveCanceled.Error()), "query", key)
		}

		report := r.walkRoot(ctx, root, key)
		if item, ok := report.FirstExact(key); ok {
			r.logger.Debug("exact match", "query", key, "path", item.Path, "root", root)
			r.cache.Put(key, item.Path)
			return domain.Resolution{Item: item, Source: domain.SourceExact, Score: 100}, nil
		}
		pool = append(pool, report.Candidates...)
	}
	span.SetAttribute("candidates", len(pool))

	best, score, ok := r.best(key, pool)
	if !ok || score <= r.opts.Threshold {
		r.logger.Debug("no match above threshold",
			"query", key, "candidates", len(pool), "best_score", score, "threshold", r.opts.Threshold)
		return domain.Resolution{}, notFound(key)
	}

	r.logger.Debug("fuzzy match", "query", key, "name", best.Name, "score", score)
	r.cache.Put(key, best.Path)
	return domain.Resolution{Item: best, Source: domain.SourceFuzzy, Score: score}, nil
}

// fromCache rebuilds the item for a cached path from disk.
func (r *Resolver) fromCache(key string) (domain.Resolution, bool) {
	path, ok := r.cache.Get(key)
	if !ok {
		return domain.Resolution{}, false
	}

	item, err := r.fsys.Stat(path)
	if err != nil {
		// Gone between the cache's existence check and now.
		r.cache.RemoveByValue(path)
		return domain.Resolution{}, false
	}
	return domain.Resolution{Item: item, Source: domain.SourceCache, Score: 100}, true
}

func (r *Resolver) walkRoot(ctx context.Context, root, key string) domain.WalkReport {
	_, span := r.tracer.Start(ctx, "walk_root")
	defer span.End()

	report := r.walker.Walk(root, key, r.opts.MaxDepth)
	for _, skip := range report.Skips {
		r.logger.Debug("skipped during walk", "path", skip.Path, "reason", skip.Reason.String())
	}

	span.SetAttribute("root", root)
	span.SetAttribute("candidates", len(report.Candidates))
	span.SetAttribute("skips", len(report.Skips))
	return report
}

// best returns the highest scoring candidate; ties keep the earlier one.
func (r *Resolver) best(key string, pool []domain.Item) (domain.Item, int, bool) {
	var (
		best  domain.Item
		score = -1
	)
	for _, item := range pool {
		if s := r.scorer.Score(key, item.Name); s > score {
			best, score = item, s
		}
	}
	return best, score, score >= 0
}

func notFound(key string) error {
	return zerr.With(zerr.Wrap(domain.ErrNotFound, ""), "query", key)
}
