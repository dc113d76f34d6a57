// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/shelfmark/internal/recommend"
)

// Recommendations handles POST /recommendations.
//
// Request body:
//
//	{"user_id": "u-1", "n_items": 10, "exclude_ids": ["9786041234567"]}
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	results := h.engine.Recommend(r.Context(), recommend.Request{
		UserID:     strings.TrimSpace(req.UserID),
		N:          derefOr(req.NItems, recommend.DefaultN),
		ExcludeIDs: req.ExcludeIDs,
	})
	respondSuccess(w, r, results, countOf(len(results)), start)
}

// Similar handles POST /similar.
//
// Request body:
//
//	{"book_id": "9786041234567", "n_items": 6}
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SimilarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	results := h.engine.Similar(r.Context(), strings.TrimSpace(req.BookID), derefOr(req.NItems, recommend.DefaultN))
	respondSuccess(w, r, results, countOf(len(results)), start)
}

// Featured handles GET /featured?limit=10.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := FeaturedRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	if !r.URL.Query().Has("limit") {
		req.Limit = recommend.DefaultN
	}

	results := h.engine.Popular(r.Context(), req.Limit)
	respondSuccess(w, r, results, countOf(len(results)), start)
}

func derefOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
