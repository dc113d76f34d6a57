// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmark/internal/recommend"
)

// RecommendEngine is the part of *recommend.Engine the maintenance
// service drives.
type RecommendEngine interface {
	WarmCache(ctx context.Context, limit int) int
	Stats() recommend.Stats
}

// EngineServiceConfig holds configuration for the engine maintenance service.
type EngineServiceConfig struct {
	// WarmupBooks is how many of the most viewed books to precompute
	// similarity rankings for on start. 0 skips warm-up.
	WarmupBooks int

	// StatsInterval is how often engine counters are logged. 0 disables
	// periodic logging; the service then idles until canceled.
	StatsInterval time.Duration
}

// EngineService performs background maintenance of the recommendation
// engine under suture supervision: a cache warm-up on start, then
// periodic stats logging.
type EngineService struct {
	engine RecommendEngine
	config EngineServiceConfig
	logger zerolog.Logger
}

// NewEngineService creates a new engine maintenance service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngineService(engine RecommendEngine, cfg EngineServiceConfig, logger zerolog.Logger) *EngineService {
	return &EngineService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "engine").Logger(),
	}
}

// Serve implements suture.Service.
func (s *EngineService) Serve(ctx context.Context) error {
	if s.config.WarmupBooks > 0 {
		start := time.Now()
		warmed := s.engine.WarmCache(ctx, s.config.WarmupBooks)
		s.logger.Info().
			Int("requested", s.config.WarmupBooks).
			Int("warmed", warmed).
			Dur("duration", time.Since(start)).
			Msg("similarity cache warmed")
	}

	if s.config.StatsInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logStats()
			return ctx.Err()
		case <-ticker.C:
			s.logStats()
		}
	}
}

func (s *EngineService) logStats() {
	stats := s.engine.Stats()
	s.logger.Info().
		Int64("similar_requests", stats.SimilarRequests).
		Int64("recommend_requests", stats.RecommendRequests).
		Int64("popular_requests", stats.PopularRequests).
		Int64("cache_hits", stats.CacheHits).
		Int64("cache_misses", stats.CacheMisses).
		Int("catalog_books", stats.CatalogBooks).
		Msg("engine stats")
}

// String returns the service name for logging.
func (s *EngineService) String() string {
	return "engine-service"
}
