// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSnapshot extracts the sample count and sum from a histogram
func histogramSnapshot(t *testing.T, h prometheus.Histogram) (count uint64, sum float64) {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordBatch(t *testing.T) {
	success := testutil.ToFloat64(BatchesTotal.WithLabelValues("success"))
	failed := testutil.ToFloat64(BatchesTotal.WithLabelValues("error"))

	RecordBatch(10*time.Millisecond, nil)
	RecordBatch(2*time.Millisecond, errors.New("line 3: syntax error"))

	if got := testutil.ToFloat64(BatchesTotal.WithLabelValues("success")); got != success+1 {
		t.Errorf("success batches = %v, want %v", got, success+1)
	}
	if got := testutil.ToFloat64(BatchesTotal.WithLabelValues("error")); got != failed+1 {
		t.Errorf("failed batches = %v, want %v", got, failed+1)
	}
}

func TestRecordLoadError(t *testing.T) {
	tests := []string{"syntax", "shape", "range", "degenerate", "algorithm", "query", "other"}
	for _, kind := range tests {
		t.Run(kind, func(t *testing.T) {
			before := testutil.ToFloat64(LoadErrors.WithLabelValues(kind))
			RecordLoadError(kind)
			if got := testutil.ToFloat64(LoadErrors.WithLabelValues(kind)); got != before+1 {
				t.Errorf("load errors{%s} = %v, want %v", kind, got, before+1)
			}
		})
	}
}

func TestRecordPrediction(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		outcome   string
		neighbors int
	}{
		{"item-item with neighbors", "item-item", "neighbors", 2},
		{"user-user with neighbors", "user-user", "neighbors", 3},
		{"row mean fallback", "item-item", "row_mean", 0},
		{"unavailable", "user-user", "none", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(QueriesTotal.WithLabelValues(tt.algorithm, tt.outcome))
			RecordPrediction(tt.algorithm, tt.outcome, tt.neighbors)
			if got := testutil.ToFloat64(QueriesTotal.WithLabelValues(tt.algorithm, tt.outcome)); got != before+1 {
				t.Errorf("queries{%s,%s} = %v, want %v", tt.algorithm, tt.outcome, got, before+1)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/predictions", "200"))
	RecordAPIRequest("POST", "/api/v1/predictions", "200", 25*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/predictions", "200")); got != before+1 {
		t.Errorf("api requests = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests during request = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests after request = %v, want %v", got, before)
	}
}

func TestRecordEngineCache(t *testing.T) {
	hits := testutil.ToFloat64(EngineCacheHits)
	misses := testutil.ToFloat64(EngineCacheMisses)

	RecordEngineCache(false, 1)
	RecordEngineCache(true, 1)
	RecordEngineCache(true, 1)

	if got := testutil.ToFloat64(EngineCacheHits); got != hits+2 {
		t.Errorf("cache hits = %v, want %v", got, hits+2)
	}
	if got := testutil.ToFloat64(EngineCacheMisses); got != misses+1 {
		t.Errorf("cache misses = %v, want %v", got, misses+1)
	}
	if got := testutil.ToFloat64(EngineCacheEntries); got != 1 {
		t.Errorf("cache entries = %v, want 1", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("item-item", "zero"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordPrediction("item-item", "zero", 0)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(QueriesTotal.WithLabelValues("item-item", "zero")); got != before+50 {
		t.Errorf("queries = %v, want %v", got, before+50)
	}
}

func TestRecordPrediction_NeighborsHistogram(t *testing.T) {
	count, sum := histogramSnapshot(t, NeighborsUsed)

	RecordPrediction("item-item", "neighbors", 2)
	RecordPrediction("user-user", "neighbors", 3)
	RecordPrediction("item-item", "row_mean", 0)

	gotCount, gotSum := histogramSnapshot(t, NeighborsUsed)
	if gotCount != count+3 {
		t.Errorf("neighbors sample count = %d, want %d", gotCount, count+3)
	}
	if gotSum != sum+5 {
		t.Errorf("neighbors sample sum = %v, want %v", gotSum, sum+5)
	}
}

func TestRecordBatch_DurationHistogram(t *testing.T) {
	count, _ := histogramSnapshot(t, BatchDuration)

	RecordBatch(5*time.Millisecond, nil)

	if got, _ := histogramSnapshot(t, BatchDuration); got != count+1 {
		t.Errorf("batch duration sample count = %d, want %d", got, count+1)
	}
}
