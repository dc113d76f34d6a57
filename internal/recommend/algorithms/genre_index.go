// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"sort"

	"github.com/tomtom215/shelfmark/internal/catalog"
)

// GenreIndex maps each genre label to the catalog positions carrying it.
//
// Positions within a label are unique and ascending. The index is built
// once from an immutable catalog and is safe for concurrent reads.
type GenreIndex struct {
	positions map[string][]int
	genres    []string
}

// NewGenreIndex scans every book once and every distinct genre of each
// book once. A nil or empty catalog yields an empty index.
func NewGenreIndex(cat *catalog.Catalog) *GenreIndex {
	idx := &GenreIndex{positions: make(map[string][]int)}

	for pos := 0; pos < cat.Len(); pos++ {
		b := cat.Ref(pos)
		// Labels are deduplicated at load; guard anyway so a position is
		// never appended twice under one label.
		for _, g := range b.Genres {
			list := idx.positions[g]
			if n := len(list); n > 0 && list[n-1] == pos {
				continue
			}
			idx.positions[g] = append(list, pos)
		}
	}

	idx.genres = make([]string, 0, len(idx.positions))
	for g := range idx.positions {
		idx.genres = append(idx.genres, g)
	}
	sort.Strings(idx.genres)

	return idx
}

// Positions returns the ascending catalog positions tagged with genre.
// The returned slice is shared and must not be modified.
func (g *GenreIndex) Positions(genre string) []int {
	return g.positions[genre]
}

// Genres returns the indexed labels in sorted order.
func (g *GenreIndex) Genres() []string {
	out := make([]string, len(g.genres))
	copy(out, g.genres)
	return out
}

// Size returns the number of distinct genre labels.
func (g *GenreIndex) Size() int {
	return len(g.positions)
}
