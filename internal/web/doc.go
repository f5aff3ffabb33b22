// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package web serves the cinerec UI and its supporting endpoints with chi.

Routes:

	GET /                     redirect to /ui/
	GET /ui/                  form page
	GET /ui/results?...       server-side submission, full page with results
	GET /ui/static/*          cinerec.wasm and wasm_exec.js from ui.static_dir
	GET /recommend?...        reverse proxy to the upstream /recommend
	GET /api/v1/health/live   liveness
	GET /api/v1/health/ready  readiness (503 while the upstream breaker is open)
	GET /metrics              Prometheus

The form page works without JavaScript: it submits to /ui/results, where the
same controller.Controller used by the browser client runs against a
view.Page and the recorded state is rendered with html/template. When
cinerec.wasm is present in the static directory the page also loads the
browser client, which intercepts the submit and calls /recommend directly.

Global middleware, in order: chi RealIP, RequestID, PrometheusMetrics, chi
Recoverer, go-chi/cors and security headers. /ui/results and /recommend are
rate limited per client IP with go-chi/httprate.
*/
package web
