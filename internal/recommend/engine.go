// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmark/internal/cache"
	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/logging"
	"github.com/tomtom215/shelfmark/internal/metrics"
)

// Engine is the facade over the similarity, recommendation and popularity
// algorithms. It applies request defaults and caps, memoizes similarity
// rankings and records observability data.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	genres  int

	// Registered algorithms
	similarity  SimilarityScorer
	recommender Recommender
	popularity  PopularityRanker
	algMu       sync.RWMutex

	// Similar results never change for an immutable catalog.
	cache *cache.LRU[[]SimilarityResult]

	similarRequests   atomic.Int64
	recommendRequests atomic.Int64
	popularRequests   atomic.Int64
	cacheHits         atomic.Int64
	cacheMisses       atomic.Int64
}

// NewEngine creates an engine over cat. A nil cfg uses DefaultConfig and a
// nil catalog is treated as empty.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		cat = catalog.Empty()
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
		genres:  countGenres(cat),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[[]SimilarityResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	metrics.SetCatalogSize(cat.Len(), e.genres)
	e.logger.Info().
		Int("books", cat.Len()).
		Int("genres", e.genres).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("recommendation engine created")

	return e, nil
}

// SetSimilarity registers the similarity algorithm.
func (e *Engine) SetSimilarity(s SimilarityScorer) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.similarity = s
	if e.cache != nil {
		e.cache.Clear()
	}
	e.logger.Info().Str("algorithm", s.Name()).Msg("registered similarity algorithm")
}

// SetRecommender registers the recommendation algorithm.
func (e *Engine) SetRecommender(r Recommender) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.recommender = r
	e.logger.Info().Str("algorithm", r.Name()).Msg("registered recommender")
}

// SetPopularity registers the popularity ranker.
func (e *Engine) SetPopularity(p PopularityRanker) {
	e.algMu.Lock()
	defer e.algMu.Unlock()

	e.popularity = p
	e.logger.Info().Str("algorithm", p.Name()).Msg("registered popularity ranker")
}

// Similar returns up to n books most similar to isbn.
// n == 0 yields an empty slice, a negative n (DefaultN) applies the
// configured default, and n above MaxN is clamped.
// Unknown ISBNs yield an empty slice.
func (e *Engine) Similar(ctx context.Context, isbn string, n int) []SimilarityResult {
	start := time.Now()
	e.similarRequests.Add(1)
	n = e.resolveN(n, e.config.Limits.DefaultSimilarN)
	if n == 0 {
		metrics.RecordSimilarity(time.Since(start), 0)
		return []SimilarityResult{}
	}

	e.algMu.RLock()
	scorer := e.similarity
	e.algMu.RUnlock()

	logger := logging.Ctx(ctx)

	key := isbn + ":" + strconv.Itoa(n)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			metrics.RecordSimilarityCache(true)
			metrics.RecordSimilarity(time.Since(start), len(cached))
			logger.Debug().Str("isbn", isbn).Int("n", n).Msg("similarity cache hit")
			return cloneSimilarity(cached)
		}
		e.cacheMisses.Add(1)
		metrics.RecordSimilarityCache(false)
	}

	results := []SimilarityResult{}
	if scorer != nil {
		results = nonNilResults(scorer.Similar(isbn, n))
	}
	if e.cache != nil {
		e.cache.Add(key, cloneSimilarity(results))
	}

	metrics.RecordSimilarity(time.Since(start), len(results))
	logger.Debug().
		Str("isbn", isbn).
		Int("n", n).
		Int("returned", len(results)).
		Dur("latency", time.Since(start)).
		Msg("similarity computed")

	return results
}

// Recommend returns up to req.N weighted random recommendations.
// N == 0 yields an empty slice, a negative N (DefaultN) applies the
// configured default, and N above MaxN is clamped.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) []RecommendationResult {
	start := time.Now()
	e.recommendRequests.Add(1)
	req.N = e.resolveN(req.N, e.config.Limits.DefaultRecommendN)

	e.algMu.RLock()
	rec := e.recommender
	e.algMu.RUnlock()

	results := []RecommendationResult{}
	if rec != nil && req.N > 0 {
		if out := rec.Recommend(req); out != nil {
			results = out
		}
	}

	metrics.RecordRecommend(e.config.Sampling.Mode, time.Since(start))
	logging.Ctx(ctx).Debug().
		Str("user_id", req.UserID).
		Int("n", req.N).
		Int("excluded", len(req.ExcludeIDs)).
		Int("returned", len(results)).
		Dur("latency", time.Since(start)).
		Msg("recommendations generated")

	return results
}

// Popular returns the limit most viewed books.
// limit == 0 yields an empty slice, a negative limit (DefaultN) applies the
// configured default, and limit above MaxN is clamped.
func (e *Engine) Popular(ctx context.Context, limit int) []PopularBook {
	e.popularRequests.Add(1)
	limit = e.resolveN(limit, e.config.Limits.DefaultPopularLimit)

	e.algMu.RLock()
	ranker := e.popularity
	e.algMu.RUnlock()

	results := []PopularBook{}
	if ranker != nil && limit > 0 {
		if out := ranker.Popular(limit); out != nil {
			results = out
		}
	}

	metrics.RecordPopular()
	logging.Ctx(ctx).Debug().
		Int("limit", limit).
		Int("returned", len(results)).
		Msg("popular books ranked")

	return results
}

// WarmCache precomputes default-size similarity rankings for the limit most
// viewed books and returns how many were added to the cache. It does not
// touch the request counters. Returns 0 when caching is disabled or either
// the similarity or popularity algorithm is missing.
func (e *Engine) WarmCache(ctx context.Context, limit int) int {
	e.algMu.RLock()
	scorer, ranker := e.similarity, e.popularity
	e.algMu.RUnlock()

	if e.cache == nil || scorer == nil || ranker == nil || limit <= 0 {
		return 0
	}

	n := e.config.Limits.DefaultSimilarN
	warmed := 0
	for _, book := range ranker.Popular(limit) {
		if ctx.Err() != nil {
			break
		}
		key := book.ISBN + ":" + strconv.Itoa(n)
		if _, ok := e.cache.Get(key); ok {
			continue
		}
		e.cache.Add(key, cloneSimilarity(nonNilResults(scorer.Similar(book.ISBN, n))))
		warmed++
	}
	return warmed
}

// Book returns the catalog record for isbn.
func (e *Engine) Book(isbn string) (catalog.Book, bool) {
	pos, ok := e.catalog.Lookup(isbn)
	if !ok {
		return catalog.Book{}, false
	}
	return e.catalog.At(pos), true
}

// IsReady reports whether the engine has a non-empty catalog to serve.
func (e *Engine) IsReady() bool {
	return !e.catalog.IsEmpty()
}

// Models reports which algorithms are registered, keyed by role.
func (e *Engine) Models() map[string]bool {
	e.algMu.RLock()
	defer e.algMu.RUnlock()

	return map[string]bool{
		"similarity":  e.similarity != nil,
		"recommender": e.recommender != nil,
		"popularity":  e.popularity != nil,
	}
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		SimilarRequests:   e.similarRequests.Load(),
		RecommendRequests: e.recommendRequests.Load(),
		PopularRequests:   e.popularRequests.Load(),
		CacheHits:         e.cacheHits.Load(),
		CacheMisses:       e.cacheMisses.Load(),
		CatalogBooks:      e.catalog.Len(),
		GenreLabels:       e.genres,
	}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// resolveN applies the default for negative counts and the MaxN cap.
func (e *Engine) resolveN(n, def int) int {
	if n < 0 {
		return def
	}
	if n > e.config.Limits.MaxN {
		return e.config.Limits.MaxN
	}
	return n
}

func countGenres(cat *catalog.Catalog) int {
	seen := make(map[string]struct{})
	for pos := 0; pos < cat.Len(); pos++ {
		for _, g := range cat.Ref(pos).Genres {
			seen[g] = struct{}{}
		}
	}
	return len(seen)
}

// cloneSimilarity copies the outer slice so callers cannot reorder cached
// rankings. Result fields are never mutated after projection.
func cloneSimilarity(in []SimilarityResult) []SimilarityResult {
	out := make([]SimilarityResult, len(in))
	copy(out, in)
	return out
}

func nonNilResults(in []SimilarityResult) []SimilarityResult {
	if in == nil {
		return []SimilarityResult{}
	}
	return in
}
