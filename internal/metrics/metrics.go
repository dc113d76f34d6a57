// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for similarity requests.
const (
	ResultHit   = "hit"
	ResultEmpty = "empty"
)

// rankingBuckets suits in-memory ranking over catalogs of a few thousand books.
var rankingBuckets = []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1}

var (
	// Similarity Metrics
	SimilarityRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfmark_similarity_requests_total",
			Help: "Total number of similarity requests by result (hit, empty)",
		},
		[]string{"result"},
	)

	SimilarityDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shelfmark_similarity_duration_seconds",
			Help:    "Duration of similarity ranking in seconds",
			Buckets: rankingBuckets,
		},
	)

	SimilarityCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shelfmark_similarity_cache_hits_total",
			Help: "Total number of similarity results served from cache",
		},
	)

	SimilarityCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shelfmark_similarity_cache_misses_total",
			Help: "Total number of similarity results computed",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfmark_recommend_requests_total",
			Help: "Total number of recommendation requests by sampling mode",
		},
		[]string{"mode"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shelfmark_recommend_duration_seconds",
			Help:    "Duration of weighted recommendation sampling in seconds",
			Buckets: rankingBuckets,
		},
	)

	PopularRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shelfmark_popular_requests_total",
			Help: "Total number of popularity ranking requests",
		},
	)

	// Catalog Metrics
	CatalogBooks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shelfmark_catalog_books",
			Help: "Number of books in the loaded catalog",
		},
	)

	GenreIndexLabels = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shelfmark_genre_index_labels",
			Help: "Number of distinct genre labels in the genre index",
		},
	)

	CatalogSkippedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfmark_catalog_skipped_records_total",
			Help: "Catalog records skipped at load time by reason",
		},
		[]string{"reason"}, // "no_isbn", "duplicate"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordSimilarity records a similarity ranking.
func RecordSimilarity(duration time.Duration, results int) {
	result := ResultHit
	if results == 0 {
		result = ResultEmpty
	}
	SimilarityRequests.WithLabelValues(result).Inc()
	SimilarityDuration.Observe(duration.Seconds())
}

// RecordSimilarityCache records a similarity cache lookup.
func RecordSimilarityCache(hit bool) {
	if hit {
		SimilarityCacheHits.Inc()
	} else {
		SimilarityCacheMisses.Inc()
	}
}

// RecordRecommend records a weighted recommendation draw.
func RecordRecommend(mode string, duration time.Duration) {
	RecommendRequests.WithLabelValues(mode).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordPopular records a popularity ranking request.
func RecordPopular() {
	PopularRequests.Inc()
}

// SetCatalogSize publishes the loaded catalog and genre index sizes.
func SetCatalogSize(books, genres int) {
	CatalogBooks.Set(float64(books))
	GenreIndexLabels.Set(float64(genres))
}

// RecordCatalogSkipped records catalog records dropped at load time.
func RecordCatalogSkipped(reason string, count int) {
	if count <= 0 {
		return
	}
	CatalogSkippedRecords.WithLabelValues(reason).Add(float64(count))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
