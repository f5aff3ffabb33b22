// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package models

import (
	"time"
)

// APIResponse is the envelope of Cinerec's own JSON endpoints.
//
// Status field values:
//   - "success": see Data
//   - "error": see Error
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries the response timestamp.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the liveness and readiness endpoints.
type HealthStatus struct {
	Status         string `json:"status"`
	Upstream       string `json:"upstream"`
	CircuitBreaker string `json:"circuit_breaker,omitempty"`
	Version        string `json:"version,omitempty"`
}
