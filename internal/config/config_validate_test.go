// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package config

import (
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "HTTP_READ_TIMEOUT"},
		{"blank catalog path", func(c *Config) { c.Catalog.Path = "  " }, "CATALOG_PATH"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"upper-case log level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"negative weight", func(c *Config) {
			c.Recommend.GenreWeight = 0.7
			c.Recommend.AuthorWeight = -0.1
		}, "SIMILARITY_AUTHOR_WEIGHT"},
		{"NaN weight", func(c *Config) { c.Recommend.YearWeight = math.NaN() }, "SIMILARITY_YEAR_WEIGHT"},
		{"weights do not sum to one", func(c *Config) { c.Recommend.GenreWeight = 0.6 }, "sum to 1.0"},
		{"reweighted", func(c *Config) {
			c.Recommend.GenreWeight = 0.6
			c.Recommend.AuthorWeight = 0.2
		}, ""},
		{"year window", func(c *Config) { c.Recommend.YearWindow = 0 }, "SIMILARITY_YEAR_WINDOW"},
		{"sampling mode", func(c *Config) { c.Recommend.SamplingMode = "alias" }, "RECOMMEND_SAMPLING_MODE"},
		{"tree sampling", func(c *Config) { c.Recommend.SamplingMode = "tree" }, ""},
		{"max n", func(c *Config) { c.Recommend.MaxN = 0 }, "RECOMMEND_MAX_N"},
		{"default above max", func(c *Config) { c.Recommend.DefaultRecommendN = 101 }, "RECOMMEND_DEFAULT_N"},
		{"default zero", func(c *Config) { c.Recommend.DefaultSimilarN = 0 }, "SIMILAR_DEFAULT_N"},
		{"cache without capacity", func(c *Config) { c.Recommend.CacheMaxEntries = 0 }, "SIMILAR_CACHE_MAX_ENTRIES"},
		{"disabled cache without capacity", func(c *Config) {
			c.Recommend.CacheEnabled = false
			c.Recommend.CacheMaxEntries = 0
		}, ""},
		{"negative warmup", func(c *Config) { c.Recommend.WarmupBooks = -1 }, "SIMILAR_CACHE_WARMUP"},
		{"negative stats interval", func(c *Config) { c.Recommend.StatsInterval = -1 }, "ENGINE_STATS_INTERVAL"},
		{"negative cache ttl", func(c *Config) { c.Recommend.CacheTTL = -1 }, "SIMILAR_CACHE_TTL"},
		{"origin with path", func(c *Config) {
			c.Security.CORSOrigins = []string{"http://localhost:3000/app"}
		}, "CORS_ORIGINS"},
		{"origin without scheme", func(c *Config) {
			c.Security.CORSOrigins = []string{"localhost:3000"}
		}, "CORS_ORIGINS"},
		{"wildcard with credentials", func(c *Config) {
			c.Security.CORSOrigins = []string{"*"}
		}, "CORS_ALLOW_CREDENTIALS"},
		{"wildcard without credentials", func(c *Config) {
			c.Security.CORSOrigins = []string{"*"}
			c.Security.CORSAllowCredentials = false
		}, ""},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips checks", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin  string
		wantErr bool
	}{
		{"*", false},
		{"http://localhost:5173", false},
		{"https://books.example.com", false},
		{"https://books.example.com/", true},
		{"ftp://books.example.com", true},
		{"https://", true},
		{"https://books.example.com?x=1", true},
		{"https://books.example.com#top", true},
	}
	for _, tt := range tests {
		if err := validateOrigin(tt.origin); (err != nil) != tt.wantErr {
			t.Errorf("validateOrigin(%q) error = %v, wantErr %v", tt.origin, err, tt.wantErr)
		}
	}
}
