// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfmark/internal/validation"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// RecommendationRequest is the body of POST /recommendations.
// A missing n_items uses the engine default; an explicit 0 returns no books.
type RecommendationRequest struct {
	UserID     string   `json:"user_id" validate:"required,notblank,max=256"`
	NItems     *int     `json:"n_items" validate:"omitempty,min=0,max=100"`
	ExcludeIDs []string `json:"exclude_ids" validate:"omitempty,max=1000"`
}

// SimilarRequest is the body of POST /similar.
type SimilarRequest struct {
	BookID string `json:"book_id" validate:"required,notblank,max=64"`
	NItems *int   `json:"n_items" validate:"omitempty,min=0,max=100"`
}

// EstimateTimeRequest is the body of POST /estimate-time.
// Either pages or book_id is required. With book_id, missing pages and
// genre are taken from the catalog record.
type EstimateTimeRequest struct {
	BookID string `json:"book_id" validate:"max=64"`
	Pages  *int   `json:"pages" validate:"omitempty,min=0,max=100000"`
	Genre  string `json:"genre" validate:"max=200"`
}

// FeaturedRequest holds the query parameters of GET /featured.
type FeaturedRequest struct {
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// validateRequest validates v and converts failures to an APIError.
func validateRequest(v interface{}) *APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// parseIntQuery returns the integer query parameter key, or def when absent.
func parseIntQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
