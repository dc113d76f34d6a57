// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the locations searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/shelfmark/config.yaml",
	"/etc/shelfmark/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Path:     "data/books.json",
			Required: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			GenreWeight:         0.5,
			AuthorWeight:        0.3,
			LanguageWeight:      0.1,
			YearWeight:          0.1,
			YearWindow:          5,
			SamplingMode:        "pool",
			Seed:                0,
			DefaultSimilarN:     6,
			DefaultRecommendN:   10,
			DefaultPopularLimit: 10,
			MaxN:                100,
			CacheEnabled:        true,
			CacheTTL:            0,
			CacheMaxEntries:     4096,
			WarmupBooks:         20,
			StatsInterval:       5 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:          []string{"http://localhost:5173", "http://localhost:3000"},
			CORSAllowCredentials: true,
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			RateLimitDisabled:    false,
		},
	}
}

// LoadWithKoanf loads configuration with the following precedence
// (highest wins):
//
//  1. Environment variables
//  2. Config file (CONFIG_PATH or the first of DefaultConfigPaths found)
//  3. Built-in defaults
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	// HTTP_PORT -> server.port, CATALOG_PATH -> catalog.path
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// FilePath returns the config file LoadWithKoanf would read, or "" when
// configuration comes from defaults and environment only.
func FilePath() string {
	return findConfigFile()
}

// sliceConfigPaths are the keys whose env values are comma-separated lists.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated strings from the environment
// into slices. Values already parsed as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Catalog
	"catalog_path":     "catalog.path",
	"catalog_required": "catalog.required",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation engine
	"similarity_genre_weight":    "recommend.genre_weight",
	"similarity_author_weight":   "recommend.author_weight",
	"similarity_language_weight": "recommend.language_weight",
	"similarity_year_weight":     "recommend.year_weight",
	"similarity_year_window":     "recommend.year_window",
	"similar_default_n":          "recommend.default_similar_n",
	"recommend_default_n":        "recommend.default_recommend_n",
	"featured_default_limit":     "recommend.default_popular_limit",
	"recommend_max_n":            "recommend.max_n",
	"recommend_sampling_mode":    "recommend.sampling_mode",
	"recommend_seed":             "recommend.seed",
	"similar_cache_enabled":      "recommend.cache_enabled",
	"similar_cache_ttl":          "recommend.cache_ttl",
	"similar_cache_max_entries":  "recommend.cache_max_entries",
	"similar_cache_warmup":       "recommend.warmup_books",
	"engine_stats_interval":      "recommend.stats_interval",

	// Security
	"cors_origins":           "security.cors_origins",
	"cors_allow_credentials": "security.cors_allow_credentials",
	"rate_limit_requests":    "security.rate_limit_reqs",
	"rate_limit_window":      "security.rate_limit_window",
	"disable_rate_limit":     "security.rate_limit_disabled",
}

// envTransformFunc maps environment variable names to config paths.
// Unmapped variables return "" and are skipped so unrelated environment
// does not pollute the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller is responsible for synchronizing access to any configuration
// it reloads.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
