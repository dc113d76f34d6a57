// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package recommend

import (
	"github.com/tomtom215/shelfmark/internal/catalog"
)

// SimilarityResult is one entry of a "more like this" ranking.
type SimilarityResult struct {
	// ISBN identifies the similar book.
	ISBN string `json:"isbn"`

	// Title is the display title.
	Title string `json:"title"`

	// Authors lists the book's authors.
	Authors []string `json:"author"`

	// CoverURL is the cover image location, empty when unknown.
	CoverURL string `json:"coverUrl"`

	// Genres lists the book's genre labels.
	Genres []string `json:"genres"`

	// Similarity is the content similarity score in [0, 1],
	// rounded to 3 decimal places.
	Similarity float64 `json:"similarity"`
}

// RecommendationResult is one entry of a personalized recommendation list.
type RecommendationResult struct {
	// ISBN identifies the recommended book.
	ISBN string `json:"isbn"`

	// Title is the display title.
	Title string `json:"title"`

	// Authors lists the book's authors.
	Authors []string `json:"author"`

	// CoverURL is the cover image location, empty when unknown.
	CoverURL string `json:"coverUrl"`

	// RatingAvg is the stored average rating, nil when unrated.
	RatingAvg *float64 `json:"ratingAvg"`

	// Score is a display score in [0.7, 1.0], rounded to 2 decimal places.
	// It does not reflect ranking quality.
	Score float64 `json:"score"`
}

// PopularBook is one entry of the most-viewed ranking.
type PopularBook struct {
	// ISBN identifies the book.
	ISBN string `json:"isbn"`

	// Title is the display title.
	Title string `json:"title"`

	// Authors lists the book's authors.
	Authors []string `json:"author"`

	// CoverURL is the cover image location, empty when unknown.
	CoverURL string `json:"coverUrl"`

	// RatingAvg is the stored average rating, nil when unrated.
	RatingAvg *float64 `json:"ratingAvg"`

	// ViewCount is the number of views, zero when untracked.
	ViewCount int `json:"viewCount"`
}

// DefaultN asks the engine for its configured default result count.
// Any negative count is treated the same way.
const DefaultN = -1

// Request represents a personalized recommendation request.
type Request struct {
	// UserID identifies the caller. The weighted recommender does not
	// personalize on it; it is carried for logging.
	UserID string `json:"user_id"`

	// N is the number of recommendations to return. Zero yields none;
	// DefaultN (any negative value) applies Config.Limits.DefaultRecommendN.
	N int `json:"n_items"`

	// ExcludeIDs lists ISBNs that must not be recommended.
	ExcludeIDs []string `json:"exclude_ids,omitempty"`
}

// SimilarityScorer ranks books by content similarity to a source book.
type SimilarityScorer interface {
	// Name returns the algorithm identifier.
	Name() string

	// Similar returns up to n books most similar to isbn, best first.
	// Unknown ISBNs yield an empty, non-nil slice.
	Similar(isbn string, n int) []SimilarityResult
}

// Recommender produces personalized recommendations.
type Recommender interface {
	// Name returns the algorithm identifier.
	Name() string

	// Recommend returns up to req.N distinct books.
	Recommend(req Request) []RecommendationResult
}

// PopularityRanker ranks the catalog by popularity.
type PopularityRanker interface {
	// Name returns the algorithm identifier.
	Name() string

	// Popular returns the limit most popular books, best first.
	Popular(limit int) []PopularBook
}

// Stats contains engine counters for observability.
type Stats struct {
	// SimilarRequests is the number of Similar calls.
	SimilarRequests int64 `json:"similar_requests"`

	// RecommendRequests is the number of Recommend calls.
	RecommendRequests int64 `json:"recommend_requests"`

	// PopularRequests is the number of Popular calls.
	PopularRequests int64 `json:"popular_requests"`

	// CacheHits is the number of Similar calls served from cache.
	CacheHits int64 `json:"cache_hits"`

	// CacheMisses is the number of Similar calls computed.
	CacheMisses int64 `json:"cache_misses"`

	// CatalogBooks is the catalog size.
	CatalogBooks int `json:"catalog_books"`

	// GenreLabels is the number of distinct genre labels indexed.
	GenreLabels int `json:"genre_labels"`
}

// NewSimilarityResult projects a book into a SimilarityResult.
func NewSimilarityResult(b *catalog.Book, similarity float64) SimilarityResult {
	return SimilarityResult{
		ISBN:       b.ISBN,
		Title:      b.Title,
		Authors:    nonNil(b.Authors),
		CoverURL:   b.CoverOrEmpty(),
		Genres:     nonNil(b.Genres),
		Similarity: similarity,
	}
}

// NewRecommendationResult projects a book into a RecommendationResult.
func NewRecommendationResult(b *catalog.Book, score float64) RecommendationResult {
	return RecommendationResult{
		ISBN:      b.ISBN,
		Title:     b.Title,
		Authors:   nonNil(b.Authors),
		CoverURL:  b.CoverOrEmpty(),
		RatingAvg: b.RatingAvg,
		Score:     score,
	}
}

// NewPopularBook projects a book into a PopularBook.
func NewPopularBook(b *catalog.Book) PopularBook {
	return PopularBook{
		ISBN:      b.ISBN,
		Title:     b.Title,
		Authors:   nonNil(b.Authors),
		CoverURL:  b.CoverOrEmpty(),
		RatingAvg: b.RatingAvg,
		ViewCount: b.ViewsOrZero(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
