// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package models defines the data structures shared by the Cinerec client,
its HTTP server and its renderers.

Key Components:

  - RecommendResponse: JSON body returned by the upstream /recommend endpoint
  - ResultRow: one recommended movie with its forecasted rating or similarity
  - Value: a JSON string or number kept as the text a browser would display
  - Mode: rating prediction or similarity lookup, decided from the algorithm
  - APIResponse: envelope for Cinerec's own JSON endpoints (health checks)

The upstream owns the response format; Cinerec only consumes it. Unknown
fields are ignored and optional fields default to their zero value.
*/
package models
