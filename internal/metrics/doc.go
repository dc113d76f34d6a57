// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry through promauto at package
init and exposed at /metrics:

	curl http://localhost:8001/metrics

# Available Metrics

Ranking:
  - shelfmark_similarity_requests_total{result}: similarity calls, "hit" or "empty"
  - shelfmark_similarity_duration_seconds: similarity ranking latency
  - shelfmark_similarity_cache_hits_total / _misses_total: memoization efficiency
  - shelfmark_recommend_requests_total{mode}: weighted draws by sampling mode
  - shelfmark_recommend_duration_seconds: weighted draw latency
  - shelfmark_popular_requests_total: popularity rankings served

Catalog:
  - shelfmark_catalog_books: books loaded
  - shelfmark_genre_index_labels: distinct genre labels indexed
  - shelfmark_catalog_skipped_records_total{reason}: records dropped at load

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

# Usage

	start := time.Now()
	results := scorer.Similar(isbn, n)
	metrics.RecordSimilarity(time.Since(start), len(results))

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
