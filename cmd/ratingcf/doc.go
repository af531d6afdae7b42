// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Command ratingcf predicts missing ratings in a sparse item by user matrix
using item-item or user-user nearest neighbor collaborative filtering.

Usage:

	ratingcf [batch [FILE] | serve]

Batch mode (the default) reads one batch from FILE, INPUT_PATH or stdin
and writes one prediction per query to stdout, formatted with three
decimals. A malformed batch produces no output on stdout; the failure is
logged to stderr and the exit status is 1.

Serve mode runs the HTTP API (POST /api/v1/predictions and
/api/v1/predictions/text) under a suture supervisor, with Prometheus
metrics on /metrics. It stops gracefully on SIGINT or SIGTERM.

Configuration is read from config.yaml (or CONFIG_PATH) and environment
variables; see internal/config for the full list.
*/
package main
