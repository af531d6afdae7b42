// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Package config provides centralized configuration management for ratingcf.

# Configuration Sources

Configuration is layered with Koanf, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/ratingcf/config.yaml
  - Environment variables

Only the environment variables listed below are read; everything else in
the environment is ignored.

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

Engine:
  - ENGINE_WORKERS: concurrent queries per batch (default: 1)
  - NO_NEIGHBOR_POLICY: row_mean, none or zero (default: row_mean)
  - DEGENERATE_ROWS: reject or exclude (default: reject)
  - MIN_RATING, MAX_RATING: accepted rating scale (default: 1, 5)

Batch input:
  - INPUT_PATH: batch file, stdin when empty
  - MISSING_MARKER: token for unrated cells (default: X)
  - MAX_QUERIES: query lines per batch (default: 100)
  - MAX_DIMENSION: largest item or user count (default: 10000)

Serve mode:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:3857)
  - HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, MAX_BODY_BYTES
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CACHE_ENABLED, CACHE_TTL, CACHE_MAX_ENTRIES
*/
package config
