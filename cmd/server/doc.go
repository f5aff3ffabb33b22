// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package main is the entry point for the cinerec web server.

The server renders the movie recommendation form under /ui/, runs
server-side submissions for clients without JavaScript, serves the wasm
browser client and proxies /recommend to the recommendation service.

# Application Architecture

	RootSupervisor ("cinerec")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Upstream client, wrapped in a gobreaker circuit breaker when enabled
 4. Web server: chi router, page template, /recommend proxy
 5. Supervisor tree: suture v4, events logged via sutureslog

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	UPSTREAM_URL=http://localhost:8080   # recommendation service base URL
	UPSTREAM_TIMEOUT=30s
	HTTP_HOST=0.0.0.0
	HTTP_PORT=8090
	UI_STATIC_DIR=web/static             # cinerec.wasm and wasm_exec.js
	CORS_ORIGINS=*
	LOG_LEVEL=info
	LOG_FORMAT=json

See package config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context; the HTTP server stops
accepting connections and drains in-flight requests for up to
HTTP_SHUTDOWN_TIMEOUT.
*/
package main
