// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// weightSumTolerance is the slack allowed on the similarity weight sum.
const weightSumTolerance = 1e-9

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateLogging,
		c.validateRecommend,
		c.validateSecurity,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"HTTP_READ_TIMEOUT", c.Server.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", c.Server.IdleTimeout},
		{"HTTP_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
	}
	for _, tt := range timeouts {
		if tt.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", tt.name, tt.value)
		}
	}
	return nil
}

// validateCatalog validates the catalog location
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic (got: %s)", c.Logging.Level)
	}

	format := strings.ToLower(c.Logging.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console' (got: %s)", c.Logging.Format)
	}
	return nil
}

// validateRecommend validates the recommendation engine settings
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) validateRecommend() error {
	r := c.Recommend

	weights := []struct {
		name  string
		value float64
	}{
		{"SIMILARITY_GENRE_WEIGHT", r.GenreWeight},
		{"SIMILARITY_AUTHOR_WEIGHT", r.AuthorWeight},
		{"SIMILARITY_LANGUAGE_WEIGHT", r.LanguageWeight},
		{"SIMILARITY_YEAR_WEIGHT", r.YearWeight},
	}
	for _, w := range weights {
		if w.value < 0 || math.IsNaN(w.value) {
			return fmt.Errorf("%s must be non-negative, got %f", w.name, w.value)
		}
	}
	if sum := r.GenreWeight + r.AuthorWeight + r.LanguageWeight + r.YearWeight; math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("similarity weights must sum to 1.0, got %f", sum)
	}
	if r.YearWindow < 1 {
		return fmt.Errorf("SIMILARITY_YEAR_WINDOW must be positive, got %d", r.YearWindow)
	}

	if r.SamplingMode != "pool" && r.SamplingMode != "tree" {
		return fmt.Errorf("RECOMMEND_SAMPLING_MODE must be 'pool' or 'tree' (got: %s)", r.SamplingMode)
	}

	if r.MaxN < 1 {
		return fmt.Errorf("RECOMMEND_MAX_N must be positive, got %d", r.MaxN)
	}
	defaults := []struct {
		name  string
		value int
	}{
		{"SIMILAR_DEFAULT_N", r.DefaultSimilarN},
		{"RECOMMEND_DEFAULT_N", r.DefaultRecommendN},
		{"FEATURED_DEFAULT_LIMIT", r.DefaultPopularLimit},
	}
	for _, d := range defaults {
		if d.value < 1 || d.value > r.MaxN {
			return fmt.Errorf("%s must be between 1 and %d, got %d", d.name, r.MaxN, d.value)
		}
	}

	if r.CacheEnabled && r.CacheMaxEntries < 1 {
		return fmt.Errorf("SIMILAR_CACHE_MAX_ENTRIES must be positive when the cache is enabled, got %d", r.CacheMaxEntries)
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("SIMILAR_CACHE_TTL must be non-negative, got %v", r.CacheTTL)
	}
	if r.WarmupBooks < 0 {
		return fmt.Errorf("SIMILAR_CACHE_WARMUP must be non-negative, got %d", r.WarmupBooks)
	}
	if r.StatsInterval < 0 {
		return fmt.Errorf("ENGINE_STATS_INTERVAL must be non-negative, got %v", r.StatsInterval)
	}
	return nil
}

// validateSecurity validates CORS and rate limit settings
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("CORS_ORIGINS is invalid: %w", err)
		}
	}
	if c.Security.CORSAllowCredentials && containsWildcard(c.Security.CORSOrigins) {
		return fmt.Errorf("CORS_ORIGINS cannot contain '*' when CORS_ALLOW_CREDENTIALS=true")
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
