// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package upstream

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/query"
)

// BreakerName labels the upstream circuit breaker in logs and metrics.
const BreakerName = "recommend-api"

// CircuitBreakerClient wraps a Recommender with the circuit breaker pattern.
//
// Only transport failures count against the breaker. A 200 response carrying
// an application message is a success from the breaker's point of view, and so
// is a call canceled by the caller, so abandoned submissions never trip it.
type CircuitBreakerClient struct {
	next   Recommender
	cb     *gobreaker.CircuitBreaker[*models.RecommendResponse]
	name   string
	logger zerolog.Logger
}

// NewCircuitBreakerClient wraps next using the thresholds in cfg.
func NewCircuitBreakerClient(next Recommender, cfg config.CircuitBreakerConfig) *CircuitBreakerClient {
	name := BreakerName
	logger := logging.WithComponent("upstream")

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*models.RecommendResponse](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logger.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || IsCanceled(err)
		},
	})

	return &CircuitBreakerClient{next: next, cb: cb, name: name, logger: logger}
}

// Recommend forwards to the wrapped Recommender unless the circuit is open.
func (cbc *CircuitBreakerClient) Recommend(ctx context.Context, req *query.Request) (*models.RecommendResponse, error) {
	return cbc.execute(func() (*models.RecommendResponse, error) {
		return cbc.next.Recommend(ctx, req)
	})
}

// execute runs fn under the breaker and keeps the breaker metrics current.
func (cbc *CircuitBreakerClient) execute(fn func() (*models.RecommendResponse, error)) (*models.RecommendResponse, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			metrics.RecordUpstreamCall(0, KindRejected)
			cbc.logger.Warn().Err(err).Str("breaker", cbc.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &TransportError{Kind: KindRejected, Err: fmt.Errorf("circuit %s: %w", cbc.name, err)}
		}

		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// Ready reports whether calls are currently let through.
func (cbc *CircuitBreakerClient) Ready() bool {
	return cbc.cb.State() != gobreaker.StateOpen
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
