// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"sort"

	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/recommend"
)

// Popularity ranks the catalog by view count, descending.
//
// Books without a view count rank as zero. Ties keep catalog order. The
// ranking is computed once at construction since the catalog never changes.
type Popularity struct {
	BaseAlgorithm

	catalog *catalog.Catalog
	ranked  []int // positions sorted by views descending
}

// NewPopularity creates the popularity ranker over cat.
func NewPopularity(cat *catalog.Catalog) *Popularity {
	ranked := make([]int, cat.Len())
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return cat.Ref(ranked[i]).ViewsOrZero() > cat.Ref(ranked[j]).ViewsOrZero()
	})

	return &Popularity{
		BaseAlgorithm: NewBaseAlgorithm("popularity"),
		catalog:       cat,
		ranked:        ranked,
	}
}

// Popular returns the limit most viewed books.
// limit <= 0 returns an empty slice.
func (p *Popularity) Popular(limit int) []recommend.PopularBook {
	if limit <= 0 {
		return []recommend.PopularBook{}
	}
	if limit > len(p.ranked) {
		limit = len(p.ranked)
	}
	out := make([]recommend.PopularBook, limit)
	for i := 0; i < limit; i++ {
		out[i] = recommend.NewPopularBook(p.catalog.Ref(p.ranked[i]))
	}
	return out
}
