// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package recommend

import (
	"fmt"
	"math"
	"time"
)

// Sampling modes for the weighted recommender.
const (
	// SamplingPool replicates each book int(rating^2) times and draws
	// uniformly without replacement from the replicated pool.
	SamplingPool = "pool"

	// SamplingTree draws from the same distribution using a Fenwick tree
	// over replication counts, without materializing the pool.
	SamplingTree = "tree"
)

// weightSumTolerance is the slack allowed when checking that the similarity
// weights sum to one.
const weightSumTolerance = 1e-9

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Similarity contains the content similarity weights.
	Similarity SimilarityConfig `json:"similarity"`

	// Sampling controls the weighted random recommender.
	Sampling SamplingConfig `json:"sampling"`

	// Limits contains request defaults and caps.
	Limits LimitsConfig `json:"limits"`

	// Cache contains similarity memoization parameters.
	Cache CacheConfig `json:"cache"`
}

// SimilarityConfig holds the per-factor weights of the content similarity
// score. Weights must be non-negative and sum to 1.0.
type SimilarityConfig struct {
	// GenreWeight scales the Jaccard index of the genre sets.
	// Default: 0.5.
	GenreWeight float64 `json:"genre_weight"`

	// AuthorWeight is awarded when the author sets intersect.
	// Default: 0.3.
	AuthorWeight float64 `json:"author_weight"`

	// LanguageWeight is awarded when the languages are equal.
	// Default: 0.1.
	LanguageWeight float64 `json:"language_weight"`

	// YearWeight scales the linear year proximity term.
	// Default: 0.1.
	YearWeight float64 `json:"year_weight"`

	// YearWindow is the largest year difference that still earns a
	// proximity bonus.
	// Default: 5.
	YearWindow int `json:"year_window"`
}

// SamplingConfig controls the weighted random recommender.
type SamplingConfig struct {
	// Mode is SamplingPool or SamplingTree.
	// Default: "pool".
	Mode string `json:"mode"`

	// Seed makes every Recommend call deterministic when non-zero.
	// Zero draws a fresh seed per call.
	// Default: 0.
	Seed uint64 `json:"seed"`
}

// LimitsConfig contains request defaults and caps.
type LimitsConfig struct {
	// DefaultSimilarN is used when Similar is called with n == 0.
	// Default: 6.
	DefaultSimilarN int `json:"default_similar_n"`

	// DefaultRecommendN is used when Recommend is called with N == 0.
	// Default: 10.
	DefaultRecommendN int `json:"default_recommend_n"`

	// DefaultPopularLimit is used when Popular is called with limit == 0.
	// Default: 10.
	DefaultPopularLimit int `json:"default_popular_limit"`

	// MaxN caps every result count.
	// Default: 100.
	MaxN int `json:"max_n"`
}

// CacheConfig contains similarity memoization parameters.
type CacheConfig struct {
	// Enabled controls whether Similar results are memoized.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the entry time-to-live. Zero keeps entries until evicted.
	// Default: 0.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the LRU capacity.
	// Default: 4096.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Similarity: SimilarityConfig{
			GenreWeight:    0.5,
			AuthorWeight:   0.3,
			LanguageWeight: 0.1,
			YearWeight:     0.1,
			YearWindow:     5,
		},
		Sampling: SamplingConfig{
			Mode: SamplingPool,
		},
		Limits: LimitsConfig{
			DefaultSimilarN:     6,
			DefaultRecommendN:   10,
			DefaultPopularLimit: 10,
			MaxN:                100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 4096,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	s := c.Similarity
	weights := map[string]float64{
		"similarity.genre_weight":    s.GenreWeight,
		"similarity.author_weight":   s.AuthorWeight,
		"similarity.language_weight": s.LanguageWeight,
		"similarity.year_weight":     s.YearWeight,
	}
	for name, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%s must be non-negative, got %f", name, w)
		}
	}
	if sum := s.GenreWeight + s.AuthorWeight + s.LanguageWeight + s.YearWeight; math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("similarity weights must sum to 1.0, got %f", sum)
	}
	if s.YearWindow < 1 {
		return fmt.Errorf("similarity.year_window must be positive, got %d", s.YearWindow)
	}

	switch c.Sampling.Mode {
	case SamplingPool, SamplingTree:
	default:
		return fmt.Errorf("sampling.mode must be %q or %q, got %q", SamplingPool, SamplingTree, c.Sampling.Mode)
	}

	if c.Limits.MaxN < 1 {
		return fmt.Errorf("limits.max_n must be positive, got %d", c.Limits.MaxN)
	}
	defaults := map[string]int{
		"limits.default_similar_n":     c.Limits.DefaultSimilarN,
		"limits.default_recommend_n":   c.Limits.DefaultRecommendN,
		"limits.default_popular_limit": c.Limits.DefaultPopularLimit,
	}
	for name, v := range defaults {
		if v < 1 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
		if v > c.Limits.MaxN {
			return fmt.Errorf("%s must be <= limits.max_n, got %d > %d", name, v, c.Limits.MaxN)
		}
	}

	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs are value types.
	clone := *c
	return &clone
}
