// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package web

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinerec/internal/models"
)

const breakerDisabled = "disabled"

// HealthLive reports that the process is serving requests.
func (s *Server) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:         "alive",
			Upstream:       s.upstreamAvailability(),
			CircuitBreaker: s.breakerState(),
			Version:        s.version,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady returns 503 while the upstream circuit breaker is open, so a
// load balancer can take the instance out of rotation.
func (s *Server) HealthReady(w http.ResponseWriter, r *http.Request) {
	statusCode := http.StatusOK
	status := "ready"
	if !s.upstreamReady() {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.HealthStatus{
			Status:         status,
			Upstream:       s.upstreamAvailability(),
			CircuitBreaker: s.breakerState(),
			Version:        s.version,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

func (s *Server) upstreamReady() bool {
	return s.status == nil || s.status.Ready()
}

func (s *Server) upstreamAvailability() string {
	if s.upstreamReady() {
		return "available"
	}
	return "unavailable"
}

func (s *Server) breakerState() string {
	if s.status == nil {
		return breakerDisabled
	}
	return s.status.State()
}
