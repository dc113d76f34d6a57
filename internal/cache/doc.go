// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package cache provides the in-memory data structures behind result
memoization and weighted sampling.

# Overview

  - LRU: a generic, thread-safe least recently used cache with optional
    TTL. The recommendation engine memoizes similarity rankings in it,
    keyed by "isbn:n".
  - WeightTree: a Fenwick tree over integer weights with O(log n) Find,
    used to draw catalog positions proportionally to their rating weight
    without materializing a replicated pool.

# Usage Example

	lru := cache.NewLRU[[]recommend.SimilarityResult](1024, 0)
	lru.Add("978-1:6", results)
	if hit, ok := lru.Get("978-1:6"); ok {
	    return hit
	}

	wt := cache.NewWeightTree([]int64{12, 16, 9})
	idx := wt.Find(rng.Int64N(wt.Total()))
	wt.Add(idx, -1) // without replacement

# Thread Safety

LRU guards itself with a mutex. WeightTree is single-owner and meant to be
built per request.
*/
package cache
