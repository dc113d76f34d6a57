// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfmark/internal/recommend"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status  string          `json:"status"`
	Service string          `json:"service"`
	Version string          `json:"version"`
	Uptime  float64         `json:"uptime_seconds"`
	Models  map[string]bool `json:"models"`
	Catalog CatalogHealth   `json:"catalog"`
	Engine  recommend.Stats `json:"engine"`
	Reason  string          `json:"reason,omitempty"`
}

// CatalogHealth summarizes the loaded catalog.
type CatalogHealth struct {
	Books  int `json:"books"`
	Genres int `json:"genres"`
}

// Health handles GET /health. An empty catalog reports "degraded" with 503
// so load balancers stop routing to the instance.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()

	health := HealthStatus{
		Status:  "ok",
		Service: ServiceName,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Models:  h.engine.Models(),
		Catalog: CatalogHealth{
			Books:  stats.CatalogBooks,
			Genres: stats.GenreLabels,
		},
		Engine: stats,
	}

	if !h.engine.IsReady() {
		health.Status = "degraded"
		health.Reason = ErrCatalogNotReady.Error()
		respondJSON(w, http.StatusServiceUnavailable, &APIResponse{
			Status: StatusError,
			Data:   health,
			Metadata: Metadata{
				Timestamp:   time.Now().UTC(),
				QueryTimeMS: time.Since(start).Milliseconds(),
			},
			Error: &APIError{
				Code:    ErrCodeServiceUnavailable,
				Message: ErrCatalogNotReady.Error(),
			},
		})
		return
	}

	respondSuccess(w, r, health, nil, start)
}
