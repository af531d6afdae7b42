// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/ratingcf/internal/config"
	"github.com/tomtom215/ratingcf/internal/recommend"
	"github.com/tomtom215/ratingcf/internal/recommend/algorithms"
)

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alive":true`)

	rec = s.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"engine_cache"`)

	s.handler.SetReady(false)
	rec = s.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeServiceUnavailable)
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeNotFound)

	rec = s.do(t, http.MethodGet, "/api/v1/predictions", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeMethodNotAllowed)
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc", rec.Header().Get("X-Request-ID"))

	var env APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-abc", env.Meta.RequestID)

	rec = s.do(t, http.MethodGet, "/api/v1/health/live", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	s.do(t, http.MethodPost, "/api/v1/predictions/text", strings.NewReader(sampleText))

	rec := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ratingcf_queries_total")
	assert.Contains(t, rec.Body.String(), `endpoint="/api/v1/predictions/text"`)
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, func(c *config.Config) {
		c.Security.RateLimitDisabled = false
		c.Security.RateLimitReqs = 2
		c.Security.RateLimitWindow = time.Minute
	})

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = s.do(t, http.MethodPost, "/api/v1/predictions/text", strings.NewReader(sampleText)).Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health probes are never limited.
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/health/live", nil).Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, func(c *config.Config) {
		c.Security.CORSOrigins = []string{"https://app.example.com"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/predictions", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Engine.NoNeighborPolicy = "median"
	_, err := NewHandler(cfg, algorithms.NewKNN(), zerolog.Nop())
	assert.Error(t, err)

	_, err = NewHandler(config.Defaults(), nil, zerolog.Nop())
	assert.ErrorIs(t, err, recommend.ErrNoScorer)
}
