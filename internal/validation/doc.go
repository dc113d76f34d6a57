// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package validation provides request body validation using
// go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata and is safe for concurrent use. Field errors are reported under
// their JSON names so messages match what the client sent:
//
//	type SimilarRequest struct {
//	    BookID string `json:"book_id" validate:"required,notblank"`
//	    NItems *int   `json:"n_items" validate:"omitempty,min=0,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Custom tags:
//
//   - notblank: string must contain a non-whitespace character
package validation
