// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package middleware provides HTTP middleware shared by the API router.
//
// PrometheusMetrics records api_requests_total, api_request_duration_seconds
// and api_active_requests for every request, labelled with the chi route
// pattern so path parameters do not inflate label cardinality.
//
// Compression gzips JSON responses for clients that accept it.
package middleware
