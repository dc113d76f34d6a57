// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package algorithms implements the ranking algorithms behind the engine.
//
// # Algorithms
//
//   - ContentSimilarity: genre-indexed candidate retrieval plus a weighted
//     genre, author, language and year score
//   - WeightedRecommender: rating-weighted random sampling without replacement
//   - Popularity: catalog ranked by view count
//
// # Thread Safety
//
// All algorithms hold only immutable state built at construction and are
// safe for concurrent use. Per-call state (random generators, sampling
// trees) is allocated inside each call.
package algorithms

import (
	"math"

	"github.com/tomtom215/shelfmark/internal/recommend"
)

// BaseAlgorithm provides the name shared by all algorithms.
type BaseAlgorithm struct {
	name string
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// stringSet builds a membership set from labels.
func stringSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, s := range labels {
		set[s] = struct{}{}
	}
	return set
}

// jaccardSimilarity computes |A ∩ B| / |A ∪ B| where setA is a prebuilt
// set of a. It returns 0 when either side is empty.
func jaccardSimilarity(setA map[string]struct{}, b []string) float64 {
	if len(setA) == 0 || len(b) == 0 {
		return 0
	}

	setB := stringSet(b)
	intersection := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// intersects reports whether any label of b is in setA.
func intersects(setA map[string]struct{}, b []string) bool {
	for _, s := range b {
		if _, ok := setA[s]; ok {
			return true
		}
	}
	return false
}

// roundTo rounds x half away from zero to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// Ensure all algorithms implement their engine interfaces.
var (
	_ recommend.SimilarityScorer = (*ContentSimilarity)(nil)
	_ recommend.Recommender      = (*WeightedRecommender)(nil)
	_ recommend.PopularityRanker = (*Popularity)(nil)
)
