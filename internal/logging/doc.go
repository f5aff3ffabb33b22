// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package logging provides centralized zerolog-based structured logging for Cinerec.
//
// Every binary (the web server, the terminal client and the browser client)
// logs through this package so that submission outcomes and upstream failures
// share one format.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("algorithm", "item").Msg("Submission accepted")
//	logging.Error().Err(err).Msg("Upstream request failed")
//
//	// Context-aware logging (request_id and correlation_id are added)
//	logging.Ctx(ctx).Info().Msg("Rendering results")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Structured Logging
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # slog Adapter
//
// The suture supervisor requires an slog.Logger. NewSlogLogger bridges it to
// the global zerolog logger:
//
//	slogLogger := logging.NewSlogLogger()
//
// # Testing
//
//	var buf bytes.Buffer
//	logging.Init(logging.Config{Level: "debug", Output: &buf})
//	defer logging.Init(logging.DefaultConfig())
package logging
