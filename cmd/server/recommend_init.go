// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/config"
	"github.com/tomtom215/shelfmark/internal/recommend"
	"github.com/tomtom215/shelfmark/internal/recommend/algorithms"
	"github.com/tomtom215/shelfmark/internal/supervisor"
	"github.com/tomtom215/shelfmark/internal/supervisor/services"
)

// errCatalogRequired is returned when CATALOG_REQUIRED is set and the
// catalog could not be loaded.
var errCatalogRequired = errors.New("catalog is required but could not be loaded")

// loadCatalog reads the configured catalog. Unless the catalog is marked
// required, load failures are logged and an empty catalog is returned so the
// service starts and reports degraded health.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadCatalog(cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	cat, stats, err := catalog.NewLoader(logger).LoadFile(cfg.Catalog.Path)
	if err != nil {
		if cfg.Catalog.Required {
			return nil, fmt.Errorf("%w: %w", errCatalogRequired, err)
		}
		logger.Warn().Err(err).Str("path", cfg.Catalog.Path).Msg("catalog unavailable, starting with an empty catalog")
		return cat, nil
	}

	logger.Info().
		Str("path", cfg.Catalog.Path).
		Int("records", stats.Records).
		Int("loaded", stats.Loaded).
		Int("skipped_no_isbn", stats.NoISBN).
		Int("skipped_duplicates", stats.Duplicates).
		Msg("catalog loaded")
	return cat, nil
}

// initEngine builds the recommendation engine over cat, registers the
// content similarity, weighted sampling and popularity algorithms, and adds
// the engine maintenance service to the supervisor tree when tree is non-nil.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *config.Config, cat *catalog.Catalog, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(cfg)

	engine, err := recommend.NewEngine(engineCfg, cat, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	index := algorithms.NewGenreIndex(cat)
	engine.SetSimilarity(algorithms.NewContentSimilarity(engineCfg.Similarity, cat, index))
	engine.SetRecommender(algorithms.NewWeightedRecommender(engineCfg.Sampling, cat))
	engine.SetPopularity(algorithms.NewPopularity(cat))

	logger.Info().
		Int("genre_labels", index.Size()).
		Str("sampling_mode", engineCfg.Sampling.Mode).
		Bool("deterministic", engineCfg.Sampling.Seed != 0).
		Msg("recommendation algorithms registered")

	if tree != nil {
		tree.AddEngineService(services.NewEngineService(engine, services.EngineServiceConfig{
			WarmupBooks:   cfg.Recommend.WarmupBooks,
			StatsInterval: cfg.Recommend.StatsInterval,
		}, logger))
	}

	return engine, nil
}

// buildEngineConfig maps the application config onto the engine config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		Similarity: recommend.SimilarityConfig{
			GenreWeight:    r.GenreWeight,
			AuthorWeight:   r.AuthorWeight,
			LanguageWeight: r.LanguageWeight,
			YearWeight:     r.YearWeight,
			YearWindow:     r.YearWindow,
		},
		Sampling: recommend.SamplingConfig{
			Mode: r.SamplingMode,
			Seed: r.Seed,
		},
		Limits: recommend.LimitsConfig{
			DefaultSimilarN:     r.DefaultSimilarN,
			DefaultRecommendN:   r.DefaultRecommendN,
			DefaultPopularLimit: r.DefaultPopularLimit,
			MaxN:                r.MaxN,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}
