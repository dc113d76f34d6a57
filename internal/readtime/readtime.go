// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package readtime estimates how long a book takes to read from its page
// count and genre.
package readtime

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// WordsPerPage is the assumed average page density.
	WordsPerPage = 250

	// WordsPerMinute is the assumed average reading speed.
	WordsPerMinute = 250
)

// Genre multipliers. Technical and science titles read slower, comics faster.
const (
	technicalMultiplier = 1.3
	comicMultiplier     = 0.5
)

var (
	technicalMarkers = []string{"kỹ thuật", "khoa học"}
	comicMarkers     = []string{"truyện tranh"}
)

// Estimate is a reading time estimate.
type Estimate struct {
	// Minutes is the whole number of minutes.
	Minutes int `json:"minutes"`

	// Hours is Minutes/60 rounded to one decimal place.
	Hours float64 `json:"hours"`

	// Formatted is "{h}h {m}m" for an hour or more, otherwise "{m} phút".
	Formatted string `json:"formatted"`
}

// Calculate estimates the reading time of a book with the given page count
// and genre label. Negative page counts are treated as zero.
func Calculate(pages int, genre string) Estimate {
	if pages < 0 {
		pages = 0
	}

	words := float64(pages * WordsPerPage)
	minutes := int(words / WordsPerMinute * Multiplier(genre))

	return Estimate{
		Minutes:   minutes,
		Hours:     math.Round(float64(minutes)/60*10) / 10,
		Formatted: format(minutes),
	}
}

// Multiplier returns the reading speed factor for a genre label.
// Matching is case-insensitive under Vietnamese casing rules and
// independent of Unicode composition.
func Multiplier(genre string) float64 {
	if genre == "" {
		return 1.0
	}
	lower := norm.NFC.String(cases.Lower(language.Vietnamese).String(genre))

	if containsAny(lower, technicalMarkers) {
		return technicalMultiplier
	}
	if containsAny(lower, comicMarkers) {
		return comicMultiplier
	}
	return 1.0
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func format(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d phút", minutes)
}
