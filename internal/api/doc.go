// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package api exposes the recommendation engine over HTTP using the Chi
// router.
//
// # Endpoints
//
//   - GET /health: service status, registered models and catalog size;
//     503 "degraded" when no books are loaded
//   - POST /recommendations: weighted random picks for a user
//   - POST /similar: books similar to a given ISBN
//   - GET /featured: most viewed books
//   - POST /estimate-time: reading time from page count and genre, or from a catalog book
//   - GET /metrics: Prometheus exposition
//
// # Response Format
//
// Every JSON response uses the APIResponse envelope with status "success"
// or "error", a data payload, metadata (timestamp, query time, request ID)
// and an error object on failure. Malformed bodies and failed validation
// return 400 VALIDATION_ERROR. Unknown ISBNs are not errors: they produce
// an empty data list.
//
// # Middleware
//
// Request IDs (X-Request-ID) flow into the logging context, CORS is handled
// by go-chi/cors, per-IP rate limiting by go-chi/httprate, and request
// metrics and gzip compression by the middleware package.
package api
