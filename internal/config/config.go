// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Upstream UpstreamConfig `koanf:"upstream"`
	Server   ServerConfig   `koanf:"server"`
	UI       UIConfig       `koanf:"ui"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// UpstreamConfig describes the recommendation service the client talks to.
//
// Environment Variables:
//   - UPSTREAM_URL: Base URL of the recommendation service (default: http://localhost:8080)
//   - UPSTREAM_TIMEOUT: HTTP client timeout for one /recommend call (default: 30s)
type UpstreamConfig struct {
	URL            string               `koanf:"url" validate:"required,http_base_url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds the gobreaker settings wrapped around the upstream client.
type CircuitBreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of requests allowed through in half-open state.
	MaxRequests uint32 `koanf:"max_requests" validate:"gte=1"`

	// Interval is the cyclic period in closed state after which counts reset.
	Interval time.Duration `koanf:"interval" validate:"gte=0"`

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MinRequests and FailureRatio decide when the breaker trips.
	MinRequests  uint32  `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64 `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// ServerConfig holds the HTTP server settings for cmd/server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// UIConfig controls the form page served under /ui/.
type UIConfig struct {
	Title string `koanf:"title" validate:"required"`

	// StaticDir holds cinerec.wasm and wasm_exec.js. Empty disables /ui/static/.
	StaticDir string `koanf:"static_dir"`

	// Algorithms and Similarities populate the form's select elements.
	// They are never used to validate a submission.
	Algorithms   []string `koanf:"algorithms" validate:"min=1"`
	Similarities []string `koanf:"similarities" validate:"min=1"`

	DefaultRecommendations int `koanf:"default_recommendations" validate:"gt=0"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// String returns a one-line summary suitable for a startup log.
func (c *Config) String() string {
	return fmt.Sprintf("upstream=%s timeout=%s listen=%s breaker=%t",
		c.Upstream.URL, c.Upstream.Timeout, c.Server.Addr(), c.Upstream.CircuitBreaker.Enabled)
}
