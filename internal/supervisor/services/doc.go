// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package services provides suture.Service wrappers for cinerec components.

Each wrapper implements suture's context-aware Serve(ctx) error, returns
ctx.Err() on graceful shutdown and implements fmt.Stringer so that suture
event logs name the service.

HTTPServerService wraps *http.Server: it binds the configured address, serves
until the context is canceled and then calls Shutdown with its own timeout.
*/
package services
