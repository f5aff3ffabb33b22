// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package view holds the controller.View implementations that need no browser:
// Page records the final state of one submission for the server-rendered page,
// and Console prints it to a terminal.
package view
