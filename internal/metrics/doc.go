// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry at package init through
promauto, so importing the package is enough to expose them.

# Overview

The package provides metrics for:
  - Prediction batches (count, duration, load failures by kind)
  - Individual queries (algorithm, outcome, neighbors used)
  - HTTP request latency and throughput in serve mode
  - Prepared engine cache efficiency

# Metrics Endpoint

In serve mode metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:3857/metrics

# Available Metrics

Batches:
  - ratingcf_batches_total{status}
  - ratingcf_batch_duration_seconds
  - ratingcf_load_errors_total{kind}

Queries:
  - ratingcf_queries_total{algorithm, outcome}
  - ratingcf_neighbors_used

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Engine cache:
  - ratingcf_engine_cache_hits_total
  - ratingcf_engine_cache_misses_total
  - ratingcf_engine_cache_entries
*/
package metrics
