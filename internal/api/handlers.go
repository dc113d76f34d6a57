// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"time"

	"github.com/tomtom215/shelfmark/internal/recommend"
)

// ServiceName identifies this service in health responses.
const ServiceName = "shelfmark"

// Handler serves the recommendation endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: GET /health
//   - handlers_recommend.go: recommendations, similar and featured books
//   - handlers_readtime.go: POST /estimate-time
type Handler struct {
	engine    *recommend.Engine
	version   string
	startTime time.Time
}

// NewHandler creates a handler over engine.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}
}
