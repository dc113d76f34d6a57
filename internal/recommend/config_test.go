// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package recommend

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("similarity weights match production values", func(t *testing.T) {
		s := cfg.Similarity
		if s.GenreWeight != 0.5 || s.AuthorWeight != 0.3 || s.LanguageWeight != 0.1 || s.YearWeight != 0.1 {
			t.Errorf("weights = %+v", s)
		}
		if s.YearWindow != 5 {
			t.Errorf("YearWindow = %d, want 5", s.YearWindow)
		}
	})

	t.Run("limits have production defaults", func(t *testing.T) {
		l := cfg.Limits
		if l.DefaultSimilarN != 6 || l.DefaultRecommendN != 10 || l.DefaultPopularLimit != 10 {
			t.Errorf("limits = %+v", l)
		}
	})

	t.Run("pool sampling with random seed", func(t *testing.T) {
		if cfg.Sampling.Mode != SamplingPool {
			t.Errorf("Sampling.Mode = %q, want %q", cfg.Sampling.Mode, SamplingPool)
		}
		if cfg.Sampling.Seed != 0 {
			t.Errorf("Sampling.Seed = %d, want 0", cfg.Sampling.Seed)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			modify:    func(c *Config) {},
			wantError: false,
		},
		{
			name: "reweighted but still sums to one",
			modify: func(c *Config) {
				c.Similarity.GenreWeight = 0.6
				c.Similarity.AuthorWeight = 0.2
			},
			wantError: false,
		},
		{
			name:      "weights do not sum to one",
			modify:    func(c *Config) { c.Similarity.GenreWeight = 0.9 },
			wantError: true,
		},
		{
			name: "negative weight",
			modify: func(c *Config) {
				c.Similarity.GenreWeight = 0.7
				c.Similarity.LanguageWeight = -0.1
			},
			wantError: true,
		},
		{
			name:      "zero year window",
			modify:    func(c *Config) { c.Similarity.YearWindow = 0 },
			wantError: true,
		},
		{
			name:      "tree sampling",
			modify:    func(c *Config) { c.Sampling.Mode = SamplingTree },
			wantError: false,
		},
		{
			name:      "unknown sampling mode",
			modify:    func(c *Config) { c.Sampling.Mode = "reservoir" },
			wantError: true,
		},
		{
			name:      "zero max n",
			modify:    func(c *Config) { c.Limits.MaxN = 0 },
			wantError: true,
		},
		{
			name:      "default above max",
			modify:    func(c *Config) { c.Limits.DefaultRecommendN = 500 },
			wantError: true,
		},
		{
			name:      "zero default similar n",
			modify:    func(c *Config) { c.Limits.DefaultSimilarN = 0 },
			wantError: true,
		},
		{
			name: "cache enabled without capacity",
			modify: func(c *Config) {
				c.Cache.Enabled = true
				c.Cache.MaxEntries = 0
			},
			wantError: true,
		},
		{
			name: "cache disabled without capacity",
			modify: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.MaxEntries = 0
			},
			wantError: false,
		},
		{
			name:      "negative ttl",
			modify:    func(c *Config) { c.Cache.TTL = -time.Second },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	clone.Similarity.GenreWeight = 0.9
	clone.Limits.MaxN = 7

	if original.Similarity.GenreWeight != 0.5 {
		t.Error("modifying clone changed original similarity weights")
	}
	if original.Limits.MaxN != 100 {
		t.Error("modifying clone changed original limits")
	}
}
