// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig locates the book catalog loaded at startup.
type CatalogConfig struct {
	// Path is the JSON array of book records.
	Path string `koanf:"path"`

	// Required makes a missing or unreadable catalog fatal. When false the
	// service starts with an empty catalog and reports degraded health.
	Required bool `koanf:"required"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Content similarity weights; must sum to 1.0.
	GenreWeight    float64 `koanf:"genre_weight"`
	AuthorWeight   float64 `koanf:"author_weight"`
	LanguageWeight float64 `koanf:"language_weight"`
	YearWeight     float64 `koanf:"year_weight"`
	YearWindow     int     `koanf:"year_window"`

	// SamplingMode is "pool" or "tree".
	SamplingMode string `koanf:"sampling_mode"`
	// Seed makes recommendations deterministic when non-zero.
	Seed uint64 `koanf:"seed"`

	DefaultSimilarN     int `koanf:"default_similar_n"`
	DefaultRecommendN   int `koanf:"default_recommend_n"`
	DefaultPopularLimit int `koanf:"default_popular_limit"`
	MaxN                int `koanf:"max_n"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`

	// WarmupBooks is how many of the most viewed books get their similarity
	// rankings precomputed at startup. 0 disables warm-up.
	WarmupBooks int `koanf:"warmup_books"`
	// StatsInterval is how often engine counters are logged. 0 disables it.
	StatsInterval time.Duration `koanf:"stats_interval"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins          []string      `koanf:"cors_origins"`
	CORSAllowCredentials bool          `koanf:"cors_allow_credentials"`
	RateLimitReqs        int           `koanf:"rate_limit_reqs"`
	RateLimitWindow      time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled    bool          `koanf:"rate_limit_disabled"` // For testing only
}

// Load reads configuration from all sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
