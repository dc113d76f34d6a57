// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/shelfmark/internal/logging"
	"github.com/tomtom215/shelfmark/internal/readtime"
)

// EstimateTime handles POST /estimate-time.
//
// Request body:
//
//	{"pages": 320, "genre": "Khoa học"}
//	{"book_id": "9786041234567"}
//
// Explicit pages and genre override the catalog record's values.
func (h *Handler) EstimateTime(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateTimeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	pages, genre := req.Pages, req.Genre
	if bookID := strings.TrimSpace(req.BookID); bookID != "" {
		book, ok := h.engine.Book(bookID)
		if !ok {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Book not found", nil)
			return
		}
		if pages == nil {
			pages = book.Pages
		}
		if genre == "" {
			genre = strings.Join(book.Genres, ", ")
		}
	}
	if pages == nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "pages is required when the book has no page count", nil)
		return
	}

	estimate := readtime.Calculate(*pages, genre)
	logging.Ctx(r.Context()).Debug().
		Int("pages", *pages).
		Str("genre", sanitizeLogValue(genre)).
		Int("minutes", estimate.Minutes).
		Msg("reading time estimated")

	respondSuccess(w, r, estimate, nil, start)
}
