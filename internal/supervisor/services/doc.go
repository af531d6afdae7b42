// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe/Shutdown pair of
// *http.Server into a context-driven Serve, and keeps the API readiness
// probe in step with the server's lifecycle.
package services
