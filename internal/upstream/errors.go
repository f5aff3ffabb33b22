// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package upstream

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	// ErrUnexpectedStatus means the upstream answered with a status other than 200.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrDecode means a 200 response body was not a valid JSON object.
	ErrDecode = errors.New("invalid response body")
)

// Failure kinds, used as the upstream_errors_total label.
const (
	KindNetwork  = "network"
	KindStatus   = "status"
	KindDecode   = "decode"
	KindRejected = "rejected"
)

// TransportError is any failure to obtain a well-formed 200 JSON response.
// Body holds at most 64KB of a non-200 response for diagnostics; it is never
// shown to the user.
type TransportError struct {
	Kind       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("recommend request failed (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("recommend request failed (%s): %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// KindOf classifies err for metrics. It returns "" for nil.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Kind
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return KindRejected
	}
	return KindNetwork
}

// IsCanceled reports whether err stems from the caller's context rather than
// from the upstream.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
