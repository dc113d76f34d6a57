// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package main is the entry point for the Shelfmark server.

Shelfmark serves content-based book similarity, rating-weighted random
recommendations, a most-viewed ranking and a reading-time estimate over a
catalog snapshot loaded once at startup.

# Application Architecture

	RootSupervisor ("shelfmark")
	├── EngineSupervisor ("engine-layer")
	│   └── EngineService (similarity cache warm-up, periodic stats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Initialization order:

 1. Configuration: koanf layered defaults, config.yaml, environment
 2. Logging: zerolog global logger
 3. Catalog: JSON snapshot from CATALOG_PATH
 4. Engine: genre index, content similarity, weighted sampling, popularity
 5. HTTP server: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervisor tree: runs until SIGINT or SIGTERM

A missing catalog is not fatal unless CATALOG_REQUIRED=true; the service
then reports degraded health with 503 from /health.

# Endpoints

	GET  /health
	GET  /metrics
	POST /recommendations  {"user_id": "...", "n_items": 10, "exclude_ids": []}
	POST /similar          {"book_id": "...", "n_items": 6}
	GET  /featured?limit=10
	POST /estimate-time    {"pages": 320, "genre": "Khoa học"} or {"book_id": "..."}

# Example Usage

	export CATALOG_PATH=/data/books.json
	export LOG_FORMAT=console
	./shelfmark

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests within
HTTP_SHUTDOWN_TIMEOUT.
*/
package main
