// Package pipeline orchestrates one recommendation request:
// filter -> group -> generate -> score -> select.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/outfit-stylist/internal/cache"
	"github.com/jonathan/outfit-stylist/internal/filter"
	"github.com/jonathan/outfit-stylist/internal/generation"
	"github.com/jonathan/outfit-stylist/internal/scoring"
	"github.com/jonathan/outfit-stylist/internal/selection"
	"github.com/jonathan/outfit-stylist/internal/types"
)

// scoringWorkers bounds the parallel scoring of independent candidates.
const scoringWorkers = 4

// Engine runs recommendation requests. Inputs are treated as immutable
// snapshots for the duration of one call; the engine holds no mutable
// state beyond its optional cache.
type Engine struct {
	cache *cache.Cache
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache injects a recommendation cache for repeated identical requests.
func WithCache(c *cache.Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithClock overrides the engine's clock for deterministic seasonal tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend produces a ranked recommendation list. It always returns a
// list, possibly empty: fewer than 2 admissible items (insufficient
// wardrobe) and zero viable combinations both resolve to an empty list,
// never an error. The only errors are an invalid request and context
// cancellation.
func (e *Engine) Recommend(
	ctx context.Context,
	items []types.WardrobeItem,
	profile *types.StyleProfile,
	reqCtx *types.RequestContext,
	opts types.RecommendOptions,
) ([]types.Recommendation, error) {
	if err := reqCtx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request context: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.WithDefaults()

	var key uint64
	if e.cache != nil {
		key = cache.Key(items, profile, reqCtx, opts)
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	admissible := filter.Filter(items, reqCtx, filter.Options{SoftOccasion: opts.SoftOccasionFilter})
	if !filter.Sufficient(admissible) {
		return []types.Recommendation{}, nil
	}

	groups, _ := generation.GroupByCategory(admissible)
	candidates := generation.Generate(groups, reqCtx, generation.Options{
		IncludeAccessories: opts.AccessoriesEnabled(),
		MaxCombinations:    opts.MaxCombinations,
	})
	if len(candidates) == 0 {
		return []types.Recommendation{}, nil
	}

	scored, err := e.scoreAll(ctx, candidates, profile, reqCtx)
	if err != nil {
		return nil, err
	}

	selected := selection.Select(scored, opts.MaxRecommendations, opts.DiversityFactor)

	recommendations := make([]types.Recommendation, 0, len(selected))
	for i := range selected {
		recommendations = append(recommendations, types.Recommendation{
			Outfit:      selected[i].Outfit.Items,
			Analysis:    selected[i].Analysis,
			Description: scoring.Describe(&selected[i].Outfit, reqCtx),
			Reasoning:   selected[i].Analysis.Reasoning,
		})
	}

	if e.cache != nil {
		e.cache.Put(key, recommendations)
	}
	return recommendations, nil
}

// scoreAll scores candidates in parallel. Candidates share no mutable
// state; results are rejoined in input order so the selector sees the
// full set.
func (e *Engine) scoreAll(
	ctx context.Context,
	candidates []types.CandidateOutfit,
	profile *types.StyleProfile,
	reqCtx *types.RequestContext,
) ([]selection.Scored, error) {
	scorer := &scoring.Scorer{Now: e.now}
	scored := make([]selection.Scored, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoringWorkers)
	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i] = selection.Scored{
				Outfit:   candidates[i],
				Analysis: scorer.Score(&candidates[i], profile, reqCtx),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}
	return scored, nil
}
