// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Package api provides the HTTP interface of serve mode, routed with chi.

Endpoints:

	POST /api/v1/predictions        JSON ratings and queries, JSON predictions
	POST /api/v1/predictions/text   batch text format in, batch output format out
	GET  /api/v1/health/live        liveness probe
	GET  /api/v1/health/ready       readiness probe, 503 while shutting down
	GET  /metrics                   Prometheus exposition

A JSON request:

	{
	  "ratings": [["1", "2", "X"], ["X", "4", "5"]],
	  "missing_marker": "X",
	  "no_neighbor_policy": "row_mean",
	  "queries": [{"item": 1, "user": 3, "algorithm": 0, "k": 1}]
	}

Item and user are 1-based as in the text format. Every JSON response uses
the APIResponse envelope; load and query errors come back as 422 with a
code per error kind (SYNTAX_ERROR, INVALID_SHAPE, RATING_OUT_OF_RANGE,
DEGENERATE_ROW, UNSUPPORTED_ALGORITHM, INVALID_QUERY).

Prepared engines are memoized in an LRU keyed by a SHA-256 of the ratings
and engine settings, so clients that send the same matrix with new queries
skip normalization.

Middleware order: request ID with logging context, real IP, panic
recovery, CORS. Prediction routes add per-IP rate limiting, Prometheus
instrumentation and a request body limit.
*/
package api
