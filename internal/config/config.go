// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/ratingcf/internal/batch"
	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Logging  LoggingConfig  `koanf:"logging"`
	Engine   EngineConfig   `koanf:"engine"`
	Input    InputConfig    `koanf:"input"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// EngineConfig holds prediction engine settings.
//
// Environment Variables:
//   - ENGINE_WORKERS: Concurrent queries per batch (default: 1)
//   - NO_NEIGHBOR_POLICY: row_mean, none or zero (default: row_mean)
//   - DEGENERATE_ROWS: reject or exclude (default: reject)
//   - MIN_RATING / MAX_RATING: Accepted rating scale (default: 1 / 5)
type EngineConfig struct {
	Workers          int    `koanf:"workers"`
	NoNeighborPolicy string `koanf:"no_neighbor_policy"`
	DegenerateRows   string `koanf:"degenerate_rows"`
	MinRating        int    `koanf:"min_rating"`
	MaxRating        int    `koanf:"max_rating"`
}

// InputConfig holds batch input settings
type InputConfig struct {
	Path          string `koanf:"path"` // empty reads stdin
	MissingMarker string `koanf:"missing_marker"`
	MaxQueries    int    `koanf:"max_queries"`
	MaxDimension  int    `koanf:"max_dimension"`
	MaxCells      int    `koanf:"max_cells"`
}

// ServerConfig holds HTTP server settings for serve mode
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CacheConfig holds the prepared engine cache settings.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// Addr returns the listen address for serve mode.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RecommendConfig converts the engine section into a recommend.Config.
func (c *Config) RecommendConfig() (*recommend.Config, error) {
	noNeighbor, err := recommend.ParseNoNeighborPolicy(c.Engine.NoNeighborPolicy)
	if err != nil {
		return nil, err
	}
	degenerate, err := ratings.ParseDegeneratePolicy(c.Engine.DegenerateRows)
	if err != nil {
		return nil, err
	}
	cfg := &recommend.Config{
		Workers:    c.Engine.Workers,
		NoNeighbor: noNeighbor,
		Degenerate: degenerate,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RatingBounds returns the configured rating scale.
func (c *Config) RatingBounds() ratings.Bounds {
	return ratings.Bounds{
		Min: ratings.Rating(c.Engine.MinRating),
		Max: ratings.Rating(c.Engine.MaxRating),
	}
}

// BatchOptions converts the input section into batch parser options.
func (c *Config) BatchOptions() batch.Options {
	return batch.Options{
		MissingMarker: c.Input.MissingMarker,
		MaxQueries:    c.Input.MaxQueries,
		MaxDimension:  c.Input.MaxDimension,
		MaxCells:      c.Input.MaxCells,
		Bounds:        c.RatingBounds(),
	}
}

// Load reads configuration using Koanf with layered sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
