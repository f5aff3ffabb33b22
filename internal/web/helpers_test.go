// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/query"
)

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Upstream: config.UpstreamConfig{
			URL:     upstreamURL,
			Timeout: 2 * time.Second,
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8090,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		UI: config.UIConfig{
			Title:                  "Movie Recommendations",
			Algorithms:             []string{"user", "item", "tag", "title", "hybrid"},
			Similarities:           []string{"jaccard", "dice", "cosine", "pearson"},
			DefaultRecommendations: 10,
		},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
		Logging: config.LoggingConfig{Level: "error"},
	}
}

// stubRecommender answers every request with a fixed response or error.
type stubRecommender struct {
	mu   sync.Mutex
	resp *models.RecommendResponse
	err  error
	reqs []*query.Request
}

func (s *stubRecommender) Recommend(_ context.Context, req *query.Request) (*models.RecommendResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func (s *stubRecommender) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reqs)
}

type stubStatus struct {
	state string
	ready bool
}

func (s stubStatus) State() string { return s.state }
func (s stubStatus) Ready() bool   { return s.ready }

func newTestServer(t *testing.T, cfg *config.Config, rec *stubRecommender, status UpstreamStatus) http.Handler {
	t.Helper()
	srv, err := NewServer(Options{Config: cfg, Recommender: rec, Status: status, Version: "test"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv.Router()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func ratingResponse() *models.RecommendResponse {
	return &models.RecommendResponse{
		Status:     "success",
		StatusCode: 200,
		DataType:   models.DataTypeRatings,
		Data: []models.ResultRow{
			{MovieID: models.NumberValue(7), MovieTitle: "X", Result: models.NumberValue(4.2)},
		},
	}
}
