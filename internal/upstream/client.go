// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/query"
)

// maxErrorBodySize limits how much of a non-200 body is kept for diagnostics.
const maxErrorBodySize = 64 * 1024

// maxResponseSize limits how much of a 200 body is decoded.
const maxResponseSize = 32 << 20

// Recommender is anything that can answer a recommendation request.
type Recommender interface {
	Recommend(ctx context.Context, req *query.Request) (*models.RecommendResponse, error)
}

// Client talks to one upstream recommendation service.
type Client struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient creates a client for cfg.URL with cfg.Timeout as the only deadline.
func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	endpoint, err := cfg.RecommendURL()
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(endpoint.String(), query.RecommendPath)
	return NewClientWithHTTP(base, &http.Client{Timeout: cfg.Timeout}), nil
}

// NewClientWithHTTP creates a client around an existing http.Client.
// baseURL may be empty, in which case requests use the relative path
// /recommend (the browser build resolves it against the page origin).
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logging.WithComponent("upstream"),
	}
}

// URL returns the full URL requested for req.
func (c *Client) URL(req *query.Request) string {
	return c.baseURL + req.Path()
}

// Recommend issues GET /recommend once and decodes the response.
func (c *Client) Recommend(ctx context.Context, req *query.Request) (*models.RecommendResponse, error) {
	start := time.Now()
	reqURL := c.URL(req)

	resp, err := c.do(ctx, reqURL)
	metrics.RecordUpstreamCall(time.Since(start), KindOf(err))
	if err != nil {
		return nil, err
	}

	logging.Ctx(logging.ContextWithLogger(ctx, c.logger)).Debug().
		Str("url", reqURL).
		Int("rows", len(resp.Data)).
		Bool("has_message", resp.HasMessage()).
		Dur("duration", time.Since(start)).
		Msg("Upstream responded")

	return resp, nil
}

func (c *Client) do(ctx context.Context, reqURL string) (*models.RecommendResponse, error) {
	body, err := executeRequest(ctx, c.client, reqURL)
	if err != nil {
		return nil, err
	}
	return decodeResponse(body)
}

// executeRequest executes an HTTP GET request and returns the body of a 200 response.
func executeRequest(ctx context.Context, client *http.Client, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: fmt.Errorf("create request failed: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, &TransportError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status),
		}
	}

	return resp.Body, nil
}

// decodeResponse reads and decodes a 200 body. The body must be a single JSON object.
func decodeResponse(body io.ReadCloser) (*models.RecommendResponse, error) {
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxResponseSize+1))
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, StatusCode: http.StatusOK, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(data) > maxResponseSize {
		return nil, &TransportError{Kind: KindDecode, StatusCode: http.StatusOK, Err: fmt.Errorf("%w: body exceeds %d bytes", ErrDecode, maxResponseSize)}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &TransportError{Kind: KindDecode, StatusCode: http.StatusOK, Err: fmt.Errorf("%w: not a JSON object", ErrDecode)}
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, &TransportError{Kind: KindDecode, StatusCode: http.StatusOK, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	return &resp, nil
}

// readBodyForError reads at most 64KB of a response body for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
