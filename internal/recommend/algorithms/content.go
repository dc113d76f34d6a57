// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"math"
	"sort"

	"github.com/tomtom215/shelfmark/internal/catalog"
	"github.com/tomtom215/shelfmark/internal/recommend"
)

// similarityDecimals is the precision of reported similarity scores.
const similarityDecimals = 3

// ContentSimilarity ranks books by hand-weighted content similarity.
//
// Candidates are every book sharing at least one genre with the source,
// found through the GenreIndex. Each candidate is scored as:
//
//	sim(a, b) = w_genre * jaccard(genres_a, genres_b) +
//	            w_author * [authors_a ∩ authors_b ≠ ∅] +
//	            w_lang * [lang_a == lang_b] +
//	            w_year * max(0, 1 - |year_a - year_b| / window)
//
// The year term applies only when both years are known. Absent languages
// compare as "", so two books without a language match each other.
// A source with no genres has no candidates.
type ContentSimilarity struct {
	BaseAlgorithm

	genreWeight    float64
	authorWeight   float64
	languageWeight float64
	yearWeight     float64
	yearWindow     int

	catalog *catalog.Catalog
	index   *GenreIndex
}

// NewContentSimilarity creates the similarity scorer over cat and its index.
// The config is expected to have passed recommend.Config.Validate.
func NewContentSimilarity(cfg recommend.SimilarityConfig, cat *catalog.Catalog, index *GenreIndex) *ContentSimilarity {
	if cfg.YearWindow <= 0 {
		cfg.YearWindow = recommend.DefaultConfig().Similarity.YearWindow
	}
	return &ContentSimilarity{
		BaseAlgorithm:  NewBaseAlgorithm("content_similarity"),
		genreWeight:    cfg.GenreWeight,
		authorWeight:   cfg.AuthorWeight,
		languageWeight: cfg.LanguageWeight,
		yearWeight:     cfg.YearWeight,
		yearWindow:     cfg.YearWindow,
		catalog:        cat,
		index:          index,
	}
}

// Similar returns up to n books most similar to isbn.
//
// Ranking is by similarity descending with ties broken by catalog position
// ascending. Unknown ISBNs and n <= 0 return an empty slice.
func (c *ContentSimilarity) Similar(isbn string, n int) []recommend.SimilarityResult {
	if n <= 0 {
		return []recommend.SimilarityResult{}
	}
	srcPos, ok := c.catalog.Lookup(isbn)
	if !ok {
		return []recommend.SimilarityResult{}
	}
	src := c.catalog.Ref(srcPos)

	candidates := c.candidates(src, srcPos)
	if len(candidates) == 0 {
		return []recommend.SimilarityResult{}
	}

	type scored struct {
		pos   int
		score float64
	}

	srcGenres := stringSet(src.Genres)
	srcAuthors := stringSet(src.Authors)
	ranked := make([]scored, len(candidates))
	for i, pos := range candidates {
		ranked[i] = scored{pos: pos, score: c.score(src, srcGenres, srcAuthors, c.catalog.Ref(pos))}
	}

	// candidates are ascending by position, so a stable sort keeps that
	// order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	results := make([]recommend.SimilarityResult, n)
	for i := 0; i < n; i++ {
		results[i] = recommend.NewSimilarityResult(c.catalog.Ref(ranked[i].pos), ranked[i].score)
	}
	return results
}

// Score returns the rounded similarity between two catalog books.
// It reports false when either ISBN is unknown.
func (c *ContentSimilarity) Score(isbnA, isbnB string) (float64, bool) {
	posA, okA := c.catalog.Lookup(isbnA)
	posB, okB := c.catalog.Lookup(isbnB)
	if !okA || !okB {
		return 0, false
	}
	a := c.catalog.Ref(posA)
	return c.score(a, stringSet(a.Genres), stringSet(a.Authors), c.catalog.Ref(posB)), true
}

// candidates returns the union of index postings for the source's genres,
// excluding the source, in ascending position order.
func (c *ContentSimilarity) candidates(src *catalog.Book, srcPos int) []int {
	seen := make(map[int]struct{})
	for _, g := range src.Genres {
		for _, pos := range c.index.Positions(g) {
			if pos != srcPos {
				seen[pos] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

func (c *ContentSimilarity) score(a *catalog.Book, aGenres, aAuthors map[string]struct{}, b *catalog.Book) float64 {
	var score float64

	score += c.genreWeight * jaccardSimilarity(aGenres, b.Genres)

	if intersects(aAuthors, b.Authors) {
		score += c.authorWeight
	}

	if a.LanguageOrDefault() == b.LanguageOrDefault() {
		score += c.languageWeight
	}

	if ya, yb := a.YearOrZero(), b.YearOrZero(); ya != 0 && yb != 0 {
		diff := math.Abs(float64(ya - yb))
		if diff <= float64(c.yearWindow) {
			score += c.yearWeight * (1 - diff/float64(c.yearWindow))
		}
	}

	return roundTo(score, similarityDecimals)
}
