// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"math"
	"math/rand/v2"

	"github.com/tomtom215/shelfmark/internal/cache"
	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/recommend"
)

// Display score range and precision for recommendation results.
const (
	scoreFloor    = 0.7
	scoreSpan     = 0.3
	scoreDecimals = 2
)

// WeightedRecommender draws books at random, favoring higher rated ones.
//
// Each eligible book is replicated int(rating^2) times into a virtual pool;
// unrated books use catalog.DefaultRating (weight 12). When the pool holds
// more than n entries, n entries are drawn uniformly without replacement;
// otherwise the first n pool entries are taken in catalog order. Draws are
// then deduplicated by ISBN, so fewer than n results are possible.
//
// The request's UserID does not influence the draw.
type WeightedRecommender struct {
	BaseAlgorithm

	mode    string
	seed    uint64
	catalog *catalog.Catalog
}

// NewWeightedRecommender creates the recommender over cat.
func NewWeightedRecommender(cfg recommend.SamplingConfig, cat *catalog.Catalog) *WeightedRecommender {
	mode := cfg.Mode
	if mode == "" {
		mode = recommend.SamplingPool
	}
	return &WeightedRecommender{
		BaseAlgorithm: NewBaseAlgorithm("weighted_random"),
		mode:          mode,
		seed:          cfg.Seed,
		catalog:       cat,
	}
}

// Mode returns the configured sampling mode.
func (w *WeightedRecommender) Mode() string {
	return w.mode
}

// Recommend returns up to req.N distinct books.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (w *WeightedRecommender) Recommend(req recommend.Request) []recommend.RecommendationResult {
	if req.N <= 0 || w.catalog.IsEmpty() {
		return []recommend.RecommendationResult{}
	}

	positions, weights := w.eligible(req.ExcludeIDs)
	rng := w.newRand()

	var drawn []int
	if w.mode == recommend.SamplingTree {
		drawn = drawTree(rng, positions, weights, req.N)
	} else {
		drawn = drawPool(rng, positions, weights, req.N)
	}

	seen := make(map[int]struct{}, len(drawn))
	results := make([]recommend.RecommendationResult, 0, len(drawn))
	for _, pos := range drawn {
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		score := roundTo(scoreFloor+scoreSpan*rng.Float64(), scoreDecimals)
		results = append(results, recommend.NewRecommendationResult(w.catalog.Ref(pos), score))
		if len(results) == req.N {
			break
		}
	}
	return results
}

// eligible returns the non-excluded positions with a positive weight,
// in catalog order, alongside their weights.
func (w *WeightedRecommender) eligible(excludeIDs []string) ([]int, []int64) {
	exclude := stringSet(excludeIDs)
	positions := make([]int, 0, w.catalog.Len())
	weights := make([]int64, 0, w.catalog.Len())
	for pos := 0; pos < w.catalog.Len(); pos++ {
		b := w.catalog.Ref(pos)
		if _, skip := exclude[b.ISBN]; skip {
			continue
		}
		weight := ratingWeight(b.RatingOrDefault())
		if weight <= 0 {
			continue
		}
		positions = append(positions, pos)
		weights = append(weights, weight)
	}
	return positions, weights
}

// newRand returns a per-call generator. A zero seed draws from the
// process-wide source.
func (w *WeightedRecommender) newRand() *rand.Rand {
	if w.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // recommendation shuffling, not security
	}
	return rand.New(rand.NewPCG(w.seed, w.seed)) //nolint:gosec // recommendation shuffling, not security
}

// ratingWeight is int(rating^2), zero for negative or NaN ratings.
// Ratings above catalog.MaxRating count as MaxRating, so no book weighs
// more than 25 and the pool stays bounded by 25 slots per book.
func ratingWeight(rating float64) int64 {
	if math.IsNaN(rating) || rating < 0 {
		return 0
	}
	rating = math.Min(rating, catalog.MaxRating)
	return int64(rating * rating)
}

// drawPool materializes the replicated pool and runs a partial
// Fisher-Yates shuffle over its first n slots.
func drawPool(rng *rand.Rand, positions []int, weights []int64, n int) []int {
	var size int64
	for _, wt := range weights {
		size += wt
	}
	pool := make([]int, 0, size)
	for i, pos := range positions {
		for k := int64(0); k < weights[i]; k++ {
			pool = append(pool, pos)
		}
	}

	if len(pool) <= n {
		return pool
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// drawTree samples the same distribution as drawPool with a Fenwick tree
// over replication counts, removing one unit of weight per draw.
func drawTree(rng *rand.Rand, positions []int, weights []int64, n int) []int {
	wt := cache.NewWeightTree(weights)

	if wt.Total() <= int64(n) {
		pool := make([]int, 0, wt.Total())
		for i, pos := range positions {
			for k := int64(0); k < weights[i]; k++ {
				pool = append(pool, pos)
			}
		}
		return pool
	}

	drawn := make([]int, 0, n)
	for len(drawn) < n {
		idx := wt.Find(rng.Int64N(wt.Total()))
		drawn = append(drawn, positions[idx])
		wt.Add(idx, -1)
	}
	return drawn
}
