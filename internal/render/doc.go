// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package render turns a recommendation response into presentation data.
//
// NewTable is pure: the same mode and rows always give the same Table, and
// every cell is plain text. Views decide how to draw it: the browser view
// writes cells through textContent, the server page through html/template
// escaping and the console view through WriteText.
package render
