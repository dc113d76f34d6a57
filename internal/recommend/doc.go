// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package recommend implements the book similarity and recommendation engine.
//
// # Architecture
//
// The engine is a facade over three algorithm roles, each defined here as
// an interface and implemented in the algorithms subpackage:
//
//   - SimilarityScorer: "more like this" ranking by genre, author,
//     language and publication year
//   - Recommender: rating-weighted random sampling over the catalog
//   - PopularityRanker: most viewed books
//
// The engine applies request defaults and caps from Config, memoizes
// similarity rankings in an LRU (the catalog never changes after load),
// and records Prometheus metrics and request-scoped debug logs.
//
// # Error Policy
//
// Lookups never fail. Unknown ISBNs, books without genres and an empty
// catalog all produce empty, non-nil slices so the HTTP layer renders []
// rather than null. Configuration errors are the only errors returned.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(cfg, cat, logger)
//	if err != nil {
//	    return err
//	}
//
//	index := algorithms.NewGenreIndex(cat)
//	engine.SetSimilarity(algorithms.NewContentSimilarity(cfg.Similarity, cat, index))
//	engine.SetRecommender(algorithms.NewWeightedRecommender(cfg.Sampling, cat))
//	engine.SetPopularity(algorithms.NewPopularity(cat))
//
//	similar := engine.Similar(ctx, "9786041234567", 0) // default n
//
// # Thread Safety
//
// The engine is safe for concurrent use. Algorithms read immutable catalog
// data; the similarity cache guards itself with a mutex.
package recommend
