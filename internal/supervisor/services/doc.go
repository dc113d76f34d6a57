// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package services provides suture.Service wrappers for Shelfmark components.

Each wrapper implements suture's context-aware Serve pattern and
fmt.Stringer for identification in supervisor logs.

HTTP Server (HTTPServerService):
  - Wraps *http.Server; ListenAndServe runs in a goroutine
  - Graceful Shutdown with a bounded timeout on cancellation
  - http.ErrServerClosed is not treated as a failure

Engine Maintenance (EngineService):
  - Precomputes similarity rankings for the most viewed books on start
  - Logs engine counters on a fixed interval and once more on shutdown
  - Idles until canceled when both are disabled, so suture does not
    treat it as a failed service

Serve returns ctx.Err() on graceful shutdown and a wrapped error on
failure so the supervisor can decide whether to restart.
*/
package services
