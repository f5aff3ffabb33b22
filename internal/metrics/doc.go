// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package metrics provides Prometheus metrics for Cinerec.

All collectors are registered on the default registry through promauto and
exposed by the server at /metrics:

	curl http://localhost:8090/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Submissions:
  - cinerec_submissions_total{outcome,mode}
  - cinerec_submission_duration_seconds
  - cinerec_rendered_rows

Upstream:
  - upstream_request_duration_seconds{result}
  - upstream_errors_total{kind}
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from,to}

# Example PromQL

	# Share of submissions that ended in a transport failure
	sum(rate(cinerec_submissions_total{outcome="failed"}[5m]))
	  / sum(rate(cinerec_submissions_total[5m]))
*/
package metrics
