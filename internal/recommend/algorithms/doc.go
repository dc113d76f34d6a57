// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package algorithms implements the recommendation algorithms behind the
// recommend.Engine facade.
//
// # Algorithms
//
//   - ContentSimilarity: weighted sum of genre Jaccard, author overlap,
//     language equality and publication-year proximity, restricted to
//     books that share at least one genre with the source (GenreIndex)
//   - WeightedRecommender: random draw without replacement from a pool in
//     which each book appears int(rating^2) times, either materialized
//     ("pool") or sampled through a Fenwick tree ("tree")
//   - Popularity: catalog ordered by view count, descending
//
// All algorithms are built once over an immutable catalog.Catalog and are
// safe for concurrent use. Rankings break ties by catalog position so
// results are reproducible.
package algorithms
