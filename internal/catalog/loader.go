// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// labelList decodes either a JSON string or an array of strings.
// null decodes to an empty list.
type labelList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *labelList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = labelList{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode label: %w", err)
		}
		*l = labelList{s}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return fmt.Errorf("decode label list: %w", err)
	}
	*l = arr
	return nil
}

// record is the on-disk shape of a catalog entry.
type record struct {
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	Author      labelList `json:"author"`
	Genres      labelList `json:"genres"`
	Language    *string   `json:"language"`
	Year        *int      `json:"year"`
	RatingAvg   *float64  `json:"ratingAvg"`
	ViewCount   *int      `json:"viewCount"`
	CoverURL    *string   `json:"coverUrl"`
	Pages       *int      `json:"pages"`
	Publisher   string    `json:"publisher"`
	Description string    `json:"description"`
}

func (r *record) toBook() Book {
	return Book{
		ISBN:        r.ISBN,
		Title:       r.Title,
		Authors:     []string(r.Author),
		Genres:      []string(r.Genres),
		Language:    r.Language,
		Year:        r.Year,
		RatingAvg:   r.RatingAvg,
		ViewCount:   r.ViewCount,
		CoverURL:    r.CoverURL,
		Pages:       r.Pages,
		Publisher:   r.Publisher,
		Description: r.Description,
	}
}

// LoadStats describes what the loader kept and dropped.
type LoadStats struct {
	Records    int
	Loaded     int
	NoISBN     int
	Duplicates int
}

// Loader reads catalog snapshots.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a loader that reports skipped records to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger.With().Str("component", "catalog_loader").Logger()}
}

// LoadFile reads a JSON catalog from path.
//
// A missing or unreadable file returns an empty catalog together with the
// error so the service can still start and report itself as not ready.
func (l *Loader) LoadFile(path string) (*Catalog, LoadStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return Empty(), LoadStats{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cat, stats, err := l.Load(f)
	if err != nil {
		return Empty(), stats, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, stats, nil
}

// Load decodes a JSON array of book objects from r.
//
// Records without an ISBN are skipped. When an ISBN repeats, the first
// occurrence wins. Both cases are logged as warnings.
func (l *Loader) Load(r io.Reader) (*Catalog, LoadStats, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Empty(), LoadStats{}, fmt.Errorf("decode catalog: %w", err)
	}

	stats := LoadStats{Records: len(records)}
	books := make([]Book, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i := range records {
		isbn := strings.TrimSpace(records[i].ISBN)
		if isbn == "" {
			stats.NoISBN++
			l.logger.Warn().Int("record", i).Str("title", records[i].Title).Msg("Skipping catalog record without isbn")
			continue
		}
		if _, dup := seen[isbn]; dup {
			stats.Duplicates++
			l.logger.Warn().Int("record", i).Str("isbn", isbn).Msg("Skipping duplicate catalog isbn")
			continue
		}
		seen[isbn] = struct{}{}
		books = append(books, records[i].toBook())
	}

	cat, err := New(books)
	if err != nil {
		return Empty(), stats, err
	}
	stats.Loaded = cat.Len()

	l.logger.Info().
		Int("records", stats.Records).
		Int("loaded", stats.Loaded).
		Int("skipped_no_isbn", stats.NoISBN).
		Int("skipped_duplicates", stats.Duplicates).
		Msg("Catalog loaded")

	return cat, stats, nil
}
