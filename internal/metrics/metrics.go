// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Batch Metrics
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratingcf_batches_total",
			Help: "Total number of prediction batches processed",
		},
		[]string{"status"}, // "success", "error"
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ratingcf_batch_duration_seconds",
			Help:    "Duration of prediction batches from parse to last written line",
			Buckets: prometheus.DefBuckets,
		},
	)

	LoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratingcf_load_errors_total",
			Help: "Total number of batches rejected while loading",
		},
		[]string{"kind"}, // "syntax", "shape", "range", "degenerate", "algorithm", "query", "other"
	)

	// Query Metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratingcf_queries_total",
			Help: "Total number of prediction queries answered",
		},
		[]string{"algorithm", "outcome"},
	)

	NeighborsUsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ratingcf_neighbors_used",
			Help:    "Number of neighbors contributing to each prediction",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Engine Cache Metrics
	EngineCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ratingcf_engine_cache_hits_total",
			Help: "Total number of prepared engines served from cache",
		},
	)

	EngineCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ratingcf_engine_cache_misses_total",
			Help: "Total number of engines built because no cached one matched",
		},
	)

	EngineCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ratingcf_engine_cache_entries",
			Help: "Current number of prepared engines in cache",
		},
	)
)

// RecordBatch records a completed or failed batch
func RecordBatch(duration time.Duration, err error) {
	BatchDuration.Observe(duration.Seconds())
	if err != nil {
		BatchesTotal.WithLabelValues("error").Inc()
		return
	}
	BatchesTotal.WithLabelValues("success").Inc()
}

// RecordLoadError records a batch rejected before any query ran
func RecordLoadError(kind string) {
	LoadErrors.WithLabelValues(kind).Inc()
}

// RecordPrediction records one answered query
func RecordPrediction(algorithm, outcome string, neighbors int) {
	QueriesTotal.WithLabelValues(algorithm, outcome).Inc()
	NeighborsUsed.Observe(float64(neighbors))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEngineCache records an engine cache lookup
func RecordEngineCache(hit bool, entries int) {
	if hit {
		EngineCacheHits.Inc()
	} else {
		EngineCacheMisses.Inc()
	}
	EngineCacheEntries.Set(float64(entries))
}
