// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package upstream calls the recommendation service's GET /recommend endpoint.

Client issues exactly one request per call and resolves it once: either a
decoded *models.RecommendResponse or a *TransportError. There are no retries.
A response counts as successful only when the status is exactly 200 and the
body is a JSON object; everything else is a transport failure:

  - ErrUnexpectedStatus: any status other than 200
  - ErrDecode: the body is not a JSON object
  - network errors from net/http, including timeouts
  - gobreaker.ErrOpenState / ErrTooManyRequests when CircuitBreakerClient rejects the call

CircuitBreakerClient wraps any Recommender with sony/gobreaker so a dead
upstream fails fast instead of tying up every submission until the timeout.
*/
package upstream
