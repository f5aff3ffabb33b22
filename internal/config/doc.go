// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package config loads and validates Cinerec configuration.
//
// Configuration is layered with Koanf v2: built-in defaults, then an optional
// YAML file (CONFIG_PATH, or config.yaml / /etc/cinerec/config.yaml), then
// environment variables. Later layers win.
//
// # Environment Variables
//
// Upstream:
//
//	UPSTREAM_URL                   - Base URL of the recommendation service (default: http://localhost:8080)
//	UPSTREAM_TIMEOUT               - Timeout for one /recommend call (default: 30s)
//	CIRCUIT_BREAKER_ENABLED        - Wrap the upstream client in a circuit breaker (default: true)
//	CIRCUIT_BREAKER_MIN_REQUESTS   - Requests in the window before the breaker may trip (default: 10)
//	CIRCUIT_BREAKER_FAILURE_RATIO  - Failure ratio that trips the breaker (default: 0.6)
//	CIRCUIT_BREAKER_TIMEOUT        - Open state duration before probing (default: 30s)
//
// Server:
//
//	HTTP_HOST, HTTP_PORT           - Listen address (default: 0.0.0.0:8090)
//	HTTP_READ_TIMEOUT              - (default: 15s)
//	HTTP_WRITE_TIMEOUT             - (default: 45s)
//	HTTP_SHUTDOWN_TIMEOUT          - (default: 10s)
//
// UI:
//
//	UI_TITLE                       - Page title
//	UI_STATIC_DIR                  - Directory holding cinerec.wasm and wasm_exec.js
//	UI_ALGORITHMS                  - Comma-separated algorithm options
//	UI_SIMILARITIES                - Comma-separated similarity options
//
// Security and logging:
//
//	CORS_ORIGINS                   - Comma-separated allowed origins (default: *)
//	RATE_LIMIT_REQUESTS            - Requests per window and client IP (default: 60)
//	RATE_LIMIT_WINDOW              - (default: 1m)
//	DISABLE_RATE_LIMIT             - (default: false)
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// # Example config.yaml
//
//	upstream:
//	  url: http://recommender:8080
//	  timeout: 10s
//	ui:
//	  algorithms: [user, item, tag, title, hybrid]
package config
