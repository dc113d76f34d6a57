// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"errors"
)

// ErrCatalogNotReady is reported by the health endpoint when no books are
// loaded.
var ErrCatalogNotReady = errors.New("catalog not ready: no books loaded")

// ErrEmptyBody is returned when a POST endpoint receives no body.
var ErrEmptyBody = errors.New("request body is empty")
