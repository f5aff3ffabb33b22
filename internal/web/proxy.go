// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/middleware"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/upstream"
)

type proxyStartKey struct{}

// recommendProxy forwards /recommend to the upstream so the browser client
// stays same-origin. The query string is passed through untouched.
type recommendProxy struct {
	proxy   *httputil.ReverseProxy
	timeout time.Duration
}

func newRecommendProxy(cfg config.UpstreamConfig) (*recommendProxy, error) {
	// RecommendURL validates the base; SetURL below appends the inbound
	// /recommend path to the base path itself.
	if _, err := cfg.RecommendURL(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("upstream url: %w", err)
	}
	base.RawQuery = ""
	base.Fragment = ""

	p := &recommendProxy{timeout: cfg.Timeout}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(base)
			pr.SetXForwarded()
			if id := middleware.GetRequestID(pr.In.Context()); id != "" {
				pr.Out.Header.Set(middleware.RequestIDHeader, id)
			}
		},
		ModifyResponse: func(resp *http.Response) error {
			kind := ""
			if resp.StatusCode != http.StatusOK {
				kind = upstream.KindStatus
			}
			metrics.RecordUpstreamCall(sinceStart(resp.Request.Context()), kind)
			return nil
		},
		ErrorHandler: p.handleError,
	}
	return p, nil
}

func (p *recommendProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	ctx = context.WithValue(ctx, proxyStartKey{}, time.Now())
	p.proxy.ServeHTTP(w, r.WithContext(ctx))
}

func sinceStart(ctx context.Context) time.Duration {
	if start, ok := ctx.Value(proxyStartKey{}).(time.Time); ok {
		return time.Since(start)
	}
	return 0
}

func (p *recommendProxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(r.Context().Err(), context.Canceled) {
		// The browser went away; nobody is listening for a response.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Proxy request canceled by client")
		return
	}

	metrics.RecordUpstreamCall(sinceStart(r.Context()), upstream.KindNetwork)
	logging.CtxErr(r.Context(), err).Str("path", r.URL.Path).Msg("Upstream proxy request failed")

	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    "UPSTREAM_ERROR",
			Message: "Recommendation service unavailable",
			Details: map[string]interface{}{"request_id": middleware.GetRequestID(r.Context())},
		},
	})
}
