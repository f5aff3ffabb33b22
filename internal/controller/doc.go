// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package controller runs one recommendation form submission from submit to
rendered result.

A Controller is bound to one View and one Recommender. Each HandleSubmit call
is an independent cycle:

	Idle -> Validating -> Idle                       (invalid input, alert shown)
	                   -> AwaitingResponse -> RenderingSuccess  -> Idle
	                                       -> RenderingMessage  -> Idle
	                                       -> RenderingError    -> Idle

Every branch ends with View.SetBusy(false). The upstream call is the only
blocking step and resolves exactly once; there are no retries. A panic after
busy entry is recovered and rendered as the generic error.

The controller keeps no state between calls. Hosts that share one View across
overlapping submissions get last-write-wins on that View.
*/
package controller
