// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package middleware provides HTTP middleware for the cinerec web server.

All middleware uses the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation ids in
    the context for logging.Ctx
  - PrometheusMetrics: request counts, durations and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip for the server-rendered UI

Middleware Stack:

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(...))

	r.Route("/ui", func(r chi.Router) {
	    r.Use(middleware.Compression)
	    ...
	})

The /recommend proxy is mounted outside the /ui group so upstream
Content-Encoding reaches the browser unchanged.
*/
package middleware
