// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel trims whitespace and converts a label to Unicode NFC so that
// precomposed and decomposed Vietnamese diacritics compare equal.
func NormalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeLabels normalizes every label, dropping empty ones and collapsing
// duplicates while preserving first-seen order. A nil or all-empty input
// yields an empty, non-nil slice.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		n := NormalizeLabel(l)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// normalizeBook applies label normalization to a book in place.
func normalizeBook(b *Book) {
	b.ISBN = strings.TrimSpace(b.ISBN)
	b.Authors = NormalizeLabels(b.Authors)
	b.Genres = NormalizeLabels(b.Genres)
	if b.Language != nil {
		lang := NormalizeLabel(*b.Language)
		if lang == "" {
			b.Language = nil
		} else {
			b.Language = &lang
		}
	}
	if b.Year != nil && *b.Year == 0 {
		b.Year = nil
	}
}
