// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package algorithms

import (
	"testing"

	"github.com/tomtom215/shelfmark/internal/catalog"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// book is a compact constructor for test fixtures. Zero year, empty
// language and negative rating/views mean "absent".
func book(isbn string, genres, authors []string, lang string, year int, rating float64, views int) catalog.Book {
	b := catalog.Book{
		ISBN:    isbn,
		Title:   "Title " + isbn,
		Genres:  genres,
		Authors: authors,
	}
	if lang != "" {
		b.Language = strPtr(lang)
	}
	if year != 0 {
		b.Year = intPtr(year)
	}
	if rating >= 0 {
		b.RatingAvg = floatPtr(rating)
	}
	if views >= 0 {
		b.ViewCount = intPtr(views)
	}
	return b
}

func mustCatalog(t *testing.T, books ...catalog.Book) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(books)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}
