// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"UPSTREAM_URL", "upstream.url"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CIRCUIT_BREAKER_FAILURE_RATIO", "upstream.circuit_breaker.failure_ratio"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Upstream.URL != "http://localhost:8080" {
		t.Errorf("Upstream.URL = %q", cfg.Upstream.URL)
	}
	if cfg.Upstream.Timeout != 30*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 30s", cfg.Upstream.Timeout)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %d, want 8090", cfg.Server.Port)
	}
	if len(cfg.UI.Algorithms) != 5 || cfg.UI.Algorithms[0] != "user" {
		t.Errorf("UI.Algorithms = %v", cfg.UI.Algorithms)
	}
	if len(cfg.UI.Similarities) != 4 {
		t.Errorf("UI.Similarities = %v", cfg.UI.Similarities)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cinerec.yaml")
	yamlBody := `
upstream:
  url: http://recommender:9000
  timeout: 5s
server:
  port: 9999
ui:
  title: From File
`
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7777")
	t.Setenv("UI_ALGORITHMS", "user, item ,tag")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Upstream.URL != "http://recommender:9000" {
		t.Errorf("Upstream.URL = %q, want file value", cfg.Upstream.URL)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, env should win over file", cfg.Server.Port)
	}
	if cfg.UI.Title != "From File" {
		t.Errorf("UI.Title = %q", cfg.UI.Title)
	}
	want := []string{"user", "item", "tag"}
	if len(cfg.UI.Algorithms) != len(want) {
		t.Fatalf("UI.Algorithms = %v, want %v", cfg.UI.Algorithms, want)
	}
	for i := range want {
		if cfg.UI.Algorithms[i] != want[i] {
			t.Errorf("UI.Algorithms[%d] = %q, want %q", i, cfg.UI.Algorithms[i], want[i])
		}
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("UPSTREAM_URL", "not a url")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for bad UPSTREAM_URL")
	}
}
