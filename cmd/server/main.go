// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/supervisor"
	"github.com/tomtom215/cinerec/internal/supervisor/services"
	"github.com/tomtom215/cinerec/internal/upstream"
	"github.com/tomtom215/cinerec/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Str("version", version).Str("config", cfg.String()).Msg("Starting cinerec")

	recommender, status, err := newRecommender(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create upstream client")
	}

	webServer, err := web.NewServer(web.Options{
		Config:      cfg,
		Recommender: recommender,
		Status:      status,
		Version:     version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create web server")
	}

	server := &http.Server{
		Handler:           webServer.Router(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("cinerec stopped")
}

// newRecommender builds the upstream client. status is nil when the circuit
// breaker is disabled.
func newRecommender(cfg *config.Config) (controller.Recommender, web.UpstreamStatus, error) {
	client, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Upstream.CircuitBreaker.Enabled {
		logging.Info().Msg("Upstream circuit breaker disabled")
		return client, nil, nil
	}
	cb := upstream.NewCircuitBreakerClient(client, cfg.Upstream.CircuitBreaker)
	return cb, cb, nil
}
