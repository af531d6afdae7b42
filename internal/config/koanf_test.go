// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Engine.Workers != 1 {
		t.Errorf("Engine.Workers = %d, want 1", cfg.Engine.Workers)
	}
	if cfg.Engine.NoNeighborPolicy != "row_mean" {
		t.Errorf("Engine.NoNeighborPolicy = %q, want row_mean", cfg.Engine.NoNeighborPolicy)
	}
	if cfg.Engine.DegenerateRows != "reject" {
		t.Errorf("Engine.DegenerateRows = %q, want reject", cfg.Engine.DegenerateRows)
	}
	if cfg.Input.MissingMarker != "X" {
		t.Errorf("Input.MissingMarker = %q, want X", cfg.Input.MissingMarker)
	}
	if cfg.Input.MaxQueries != 100 {
		t.Errorf("Input.MaxQueries = %d, want 100", cfg.Input.MaxQueries)
	}
	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Engine.MaxRating != 5 {
		t.Errorf("Engine.MaxRating = %d, want 5", cfg.Engine.MaxRating)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("ENGINE_WORKERS", "4")
	t.Setenv("NO_NEIGHBOR_POLICY", "none")
	t.Setenv("MISSING_MARKER", "?")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Engine.Workers != 4 {
		t.Errorf("Engine.Workers = %d, want 4", cfg.Engine.Workers)
	}
	if cfg.Engine.NoNeighborPolicy != "none" {
		t.Errorf("Engine.NoNeighborPolicy = %q, want none", cfg.Engine.NoNeighborPolicy)
	}
	if cfg.Input.MissingMarker != "?" {
		t.Errorf("Input.MissingMarker = %q, want ?", cfg.Input.MissingMarker)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
engine:
  workers: 2
  degenerate_rows: exclude
input:
  max_queries: 500
cache:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	// Environment wins over the file.
	t.Setenv("ENGINE_WORKERS", "3")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Engine.Workers != 3 {
		t.Errorf("Engine.Workers = %d, want 3 from env", cfg.Engine.Workers)
	}
	if cfg.Engine.DegenerateRows != "exclude" {
		t.Errorf("Engine.DegenerateRows = %q, want exclude from file", cfg.Engine.DegenerateRows)
	}
	if cfg.Input.MaxQueries != 500 {
		t.Errorf("Input.MaxQueries = %d, want 500 from file", cfg.Input.MaxQueries)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false from file")
	}
	if cfg.Input.MissingMarker != "X" {
		t.Errorf("Input.MissingMarker = %q, want default X", cfg.Input.MissingMarker)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DEGENERATE_ROWS", "ignore")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() error = nil, want validation failure")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"ENGINE_WORKERS", "engine.workers"},
		{"MISSING_MARKER", "input.missing_marker"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CACHE_TTL", "cache.ttl"},
		{"LOG_FORMAT", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestProcessSliceFields(t *testing.T) {
	k := koanf.New(".")
	if err := k.Set("security.cors_origins", " a , ,b "); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := processSliceFields(k); err != nil {
		t.Fatalf("processSliceFields() error = %v", err)
	}
	got := k.Strings("security.cors_origins")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("cors_origins = %v, want [a b]", got)
	}
}

func TestFindConfigFile_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}
