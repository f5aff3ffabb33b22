// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/middleware"
)

const (
	// WasmFile is the browser client binary looked up in ui.static_dir.
	WasmFile = "cinerec.wasm"

	// WasmExecFile is the Go runtime loader shipped with the toolchain.
	WasmExecFile = "wasm_exec.js"

	staticPrefix = "/ui/static/"
)

// UpstreamStatus reports the state of the upstream circuit breaker.
type UpstreamStatus interface {
	State() string
	Ready() bool
}

// Options configures a Server.
type Options struct {
	Config      *config.Config
	Recommender controller.Recommender

	// Status is nil when the circuit breaker is disabled.
	Status UpstreamStatus

	Version string
}

// Server holds the handlers' dependencies.
type Server struct {
	cfg         *config.Config
	recommender controller.Recommender
	status      UpstreamStatus
	version     string
	startTime   time.Time

	page   *template.Template
	proxy  http.Handler
	wasm   bool
	logger zerolog.Logger
}

// NewServer validates opts and prepares the page template and upstream proxy.
func NewServer(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("web: config is required")
	}
	if opts.Recommender == nil {
		return nil, errors.New("web: recommender is required")
	}

	page, err := parsePageTemplate()
	if err != nil {
		return nil, err
	}

	proxy, err := newRecommendProxy(opts.Config.Upstream)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	s := &Server{
		cfg:         opts.Config,
		recommender: opts.Recommender,
		status:      opts.Status,
		version:     opts.Version,
		startTime:   time.Now(),
		page:        page,
		proxy:       proxy,
		wasm:        wasmAvailable(opts.Config.UI.StaticDir),
		logger:      logging.WithComponent("web"),
	}

	s.logger.Debug().
		Bool("wasm_client", s.wasm).
		Str("static_dir", opts.Config.UI.StaticDir).
		Msg("Web server prepared")

	return s, nil
}

func wasmAvailable(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, WasmFile))
	return err == nil && !info.IsDir()
}

// Router builds the chi router with every route and middleware.
func (s *Server) Router() http.Handler {
	mw := newChiMiddleware(s.cfg.Security)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(s.withLogger)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS())
	r.Use(securityHeaders)

	r.Get("/", redirectTo("/ui/"))
	r.Get("/ui", redirectTo("/ui/"))

	r.Route("/ui", func(r chi.Router) {
		r.Use(middleware.Compression)
		r.Get("/", s.Index)
		r.With(mw.RateLimit("/ui/results")).Get("/results", s.Results)
		if s.cfg.UI.StaticDir != "" {
			r.Get("/static/*", staticHandler(s.cfg.UI.StaticDir))
		}
	})

	r.With(mw.RateLimit("/recommend")).Get("/recommend", s.proxy.ServeHTTP)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", s.HealthLive)
		r.Get("/ready", s.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// withLogger makes logging.Ctx in handlers log as the web component.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.ContextWithLogger(r.Context(), s.logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// staticHandler serves files from dir without directory listings.
func staticHandler(dir string) http.HandlerFunc {
	files := http.StripPrefix(staticPrefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		if name == "" || name[len(name)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
