// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package query turns raw form field text into a validated recommendation
// request and serializes it into the /recommend query string.
//
// The flow is:
//
//	in, err := query.ParseForm(values)     // *ValidationError on bad input
//	req := query.Build(in)                  // mode decided here, once
//	path := req.Path()                      // "/recommend?similarity=...&algorithm=..."
//
// Parameters are always emitted in the order similarity, algorithm,
// recommendations, input, maxRecords, and are percent-encoded the way a
// browser's encodeURIComponent encodes them.
package query
