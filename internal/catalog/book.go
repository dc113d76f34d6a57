// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package catalog

// DefaultRating is substituted for books without an average rating.
const DefaultRating = 3.5

// MaxRating is the top of the rating scale. Sampling weights saturate here.
const MaxRating = 5.0

// Book is a single catalog record.
//
// Optional attributes are pointers. Code outside this package reads them
// through the accessor methods below, which hold the one default each field
// degrades to when absent.
type Book struct {
	// ISBN is the unique catalog identifier.
	ISBN string `json:"isbn"`

	// Title is the display title.
	Title string `json:"title"`

	// Authors is the set of author names. A scalar "author" in the source
	// data is normalized to a one-element slice at load time.
	Authors []string `json:"author"`

	// Genres is the set of genre labels. Order is irrelevant.
	Genres []string `json:"genres"`

	// Language is the publication language code, nil when unknown.
	Language *string `json:"language,omitempty"`

	// Year is the publication year, nil (or zero) when unknown.
	Year *int `json:"year,omitempty"`

	// RatingAvg is the average reader rating, nil when unrated.
	RatingAvg *float64 `json:"ratingAvg,omitempty"`

	// ViewCount is the number of detail page views, nil when untracked.
	ViewCount *int `json:"viewCount,omitempty"`

	// CoverURL is the cover image location.
	CoverURL *string `json:"coverUrl,omitempty"`

	// Pages is the page count, used for reading time estimates.
	Pages *int `json:"pages,omitempty"`

	// Publisher and Description are carried for display only.
	Publisher   string `json:"publisher,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageOrDefault returns the language, or "" when absent.
// Two books with absent languages therefore compare equal.
func (b *Book) LanguageOrDefault() string {
	if b.Language == nil {
		return ""
	}
	return *b.Language
}

// YearOrZero returns the publication year, or 0 when unknown.
func (b *Book) YearOrZero() int {
	if b.Year == nil {
		return 0
	}
	return *b.Year
}

// RatingOrDefault returns the average rating, or DefaultRating when unrated.
// A stored zero counts as unrated: new titles are seeded with 0 before any
// review exists.
func (b *Book) RatingOrDefault() float64 {
	if b.RatingAvg == nil || *b.RatingAvg == 0 {
		return DefaultRating
	}
	return *b.RatingAvg
}

// ViewsOrZero returns the view count, or 0 when untracked.
func (b *Book) ViewsOrZero() int {
	if b.ViewCount == nil {
		return 0
	}
	return *b.ViewCount
}

// CoverOrEmpty returns the cover URL, or "" when absent.
func (b *Book) CoverOrEmpty() string {
	if b.CoverURL == nil {
		return ""
	}
	return *b.CoverURL
}

// PagesOrZero returns the page count, or 0 when unknown.
func (b *Book) PagesOrZero() int {
	if b.Pages == nil {
		return 0
	}
	return *b.Pages
}
