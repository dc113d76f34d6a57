// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

// Package logging provides centralized zerolog-based structured logging for Shelfmark.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from main
//   - JSON output for production, console output for development
//   - Request and correlation ID propagation through context.Context
//   - An slog adapter for the suture supervisor event hook
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("books", cat.Len()).Msg("Catalog loaded")
//
//	// In HTTP handlers, after the request ID middleware has run:
//	logging.Ctx(r.Context()).Debug().Str("isbn", isbn).Msg("Ranking similar books")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Components
//
// Long-lived components receive a zerolog.Logger at construction and derive
// a child tagged with their name:
//
//	logger.With().Str("component", "recommend").Logger()
//
// Always terminate event chains with Msg or Send, otherwise nothing is written.
package logging
