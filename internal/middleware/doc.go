// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package middleware holds HTTP middleware shared by the API router.
//
// PrometheusMetrics is mounted inside the chi router so the route pattern
// is known when the request finishes:
//
//	r.Route("/api/v1", func(r chi.Router) {
//		r.Use(middleware.PrometheusMetrics)
//		r.Post("/predictions", h.Predict)
//	})
package middleware
