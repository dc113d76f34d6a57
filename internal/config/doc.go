// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package config provides centralized configuration management for Shelfmark.

Configuration is layered with koanf. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. YAML config file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/shelfmark/config.yaml, /etc/shelfmark/config.yml
 3. Environment variables, through an explicit mapping table

Unmapped environment variables are ignored.

# Configuration Structure

  - ServerConfig: HTTP listen address and timeouts
  - CatalogConfig: book catalog location
  - LoggingConfig: zerolog level, format and caller info
  - RecommendConfig: similarity weights, sampling, limits and cache
  - SecurityConfig: CORS origins and rate limiting

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Catalog:
  - CATALOG_PATH: JSON array of book records (default: data/books.json)
  - CATALOG_REQUIRED: Fail startup when the catalog cannot be loaded (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Recommendation engine:
  - SIMILARITY_GENRE_WEIGHT, SIMILARITY_AUTHOR_WEIGHT,
    SIMILARITY_LANGUAGE_WEIGHT, SIMILARITY_YEAR_WEIGHT: must sum to 1.0
    (default: 0.5, 0.3, 0.1, 0.1)
  - SIMILARITY_YEAR_WINDOW: Years that still earn a proximity bonus (default: 5)
  - SIMILAR_DEFAULT_N (default: 6), RECOMMEND_DEFAULT_N (default: 10),
    FEATURED_DEFAULT_LIMIT (default: 10), RECOMMEND_MAX_N (default: 100)
  - RECOMMEND_SAMPLING_MODE: pool or tree (default: pool)
  - RECOMMEND_SEED: Non-zero makes recommendations deterministic (default: 0)
  - SIMILAR_CACHE_ENABLED, SIMILAR_CACHE_TTL, SIMILAR_CACHE_MAX_ENTRIES
  - SIMILAR_CACHE_WARMUP: Most viewed books precomputed at startup (default: 20)
  - ENGINE_STATS_INTERVAL: Engine counter log period, 0 disables (default: 5m)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins
    (default: http://localhost:5173,http://localhost:3000)
  - CORS_ALLOW_CREDENTIALS (default: true)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT: For testing only

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	fmt.Println(cfg.Server.Addr())

# Thread Safety

Config is immutable after Load returns. WatchConfigFile reports file
changes; callers that reload must synchronize access themselves.
*/
package config
