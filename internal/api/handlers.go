// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/tomtom215/ratingcf/internal/batch"
	"github.com/tomtom215/ratingcf/internal/cache"
	"github.com/tomtom215/ratingcf/internal/config"
	"github.com/tomtom215/ratingcf/internal/logging"
	"github.com/tomtom215/ratingcf/internal/metrics"
	"github.com/tomtom215/ratingcf/internal/recommend"
	"github.com/tomtom215/ratingcf/internal/validation"
)

// Handler serves the prediction and health endpoints.
type Handler struct {
	engineCfg *recommend.Config
	opts      batch.Options
	timeout   time.Duration
	scorer    recommend.Scorer
	engines   *cache.LRU[*recommend.Engine]
	logger    zerolog.Logger
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a handler from the application config. The handler
// starts out ready.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(cfg *config.Config, scorer recommend.Scorer, logger zerolog.Logger) (*Handler, error) {
	if scorer == nil {
		return nil, recommend.ErrNoScorer
	}
	engineCfg, err := cfg.RecommendConfig()
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	h := &Handler{
		engineCfg: engineCfg,
		opts:      cfg.BatchOptions(),
		timeout:   cfg.Server.Timeout,
		scorer:    scorer,
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
	if cfg.Cache.Enabled {
		h.engines = cache.NewLRU[*recommend.Engine](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	h.ready.Store(true)
	return h, nil
}

// SetReady flips the readiness probe. The HTTP service clears it while
// shutting down.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 503 while the server is not accepting work.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.ready.Load() {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Server is not ready")
		return
	}

	data := map[string]interface{}{
		"ready":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}
	if h.engines != nil {
		data["engine_cache"] = h.engines.Stats()
		data["engines"] = h.cachedEngineStats()
	}
	rw.Success(data)
}

// cachedEngineStats sums the activity of the engines currently cached.
func (h *Handler) cachedEngineStats() recommend.Stats {
	var total recommend.Stats
	for _, e := range h.engines.Values() {
		s := e.Stats()
		total.Queries += s.Queries
		total.NoNeighbor += s.NoNeighbor
		total.NeighborsTotal += s.NeighborsTotal
	}
	return total
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// Predict answers a JSON prediction request.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.predictionFailed(rw, r, err)
		return
	}

	var req PredictionRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, verr.Error(), verr.Fields)
		return
	}

	engineCfg, err := req.engineConfig(h.engineCfg)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	pair, err := req.matrices(h.opts)
	if err != nil {
		h.rejected(rw, r, err)
		return
	}
	queries, err := req.queries(h.opts.MaxQueries)
	if err != nil {
		h.rejected(rw, r, err)
		return
	}

	engine, cached, err := h.engineFor(pair, engineCfg)
	if err != nil {
		h.rejected(rw, r, err)
		return
	}

	preds, err := engine.ExecuteAll(ctx, queries)
	if err != nil {
		h.rejected(rw, r, err)
		return
	}

	results := lo.Map(preds, func(p recommend.Prediction, _ int) PredictionResult {
		metrics.RecordPrediction(p.Query.Algorithm.String(), p.Outcome.String(), p.Neighbors)
		return newPredictionResult(p)
	})

	logger := logging.FromContext(r.Context(), h.logger)
	logger.Debug().
		Int("items", engine.Items()).
		Int("users", engine.Users()).
		Int("queries", len(results)).
		Bool("cached", cached).
		Msg("predictions served")

	rw.SuccessCached(PredictionResponse{
		Items:       engine.Items(),
		Users:       engine.Users(),
		Predictions: results,
	}, cached)
}

// PredictText answers a request in the batch text format with the batch
// output format: one value per line, in query order.
func (h *Handler) PredictText(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	logger := logging.FromContext(r.Context(), h.logger)
	runner := batch.NewRunnerWithFactory(h.opts, func(job *batch.Job) (*recommend.Engine, error) {
		e, _, err := h.engineFor(job.Matrices, h.engineCfg)
		return e, err
	}, logger)

	preds, err := runner.Predict(ctx, r.Body)
	if err != nil {
		h.predictionFailed(NewResponseWriter(w, r), r, err)
		return
	}

	var out bytes.Buffer
	if err := batch.WriteResults(&out, preds); err != nil {
		NewResponseWriter(w, r).InternalError(err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes())
}

// rejected counts a JSON request failure the way the batch runner counts
// its own, then responds.
func (h *Handler) rejected(rw *ResponseWriter, r *http.Request, err error) {
	if kind := batch.ErrorKind(err); errorCodes[kind] != "" {
		metrics.RecordLoadError(kind)
	}
	h.predictionFailed(rw, r, err)
}

// predictionFailed maps load, validation and execution errors to responses.
func (h *Handler) predictionFailed(rw *ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusServiceUnavailable, ErrCodeRequestCanceled, "Prediction timed out")
		return
	case errors.Is(err, context.Canceled):
		rw.Error(http.StatusServiceUnavailable, ErrCodeRequestCanceled, "Request canceled")
		return
	}

	kind := batch.ErrorKind(err)
	code, ok := errorCodes[kind]
	if !ok {
		rw.InternalError(err)
		return
	}

	logger := logging.FromContext(r.Context(), h.logger)
	logger.Debug().Err(err).Str("kind", kind).Msg("prediction rejected")

	details := map[string]interface{}{"kind": kind}
	var le *batch.LineError
	if errors.As(err, &le) {
		details["line"] = le.Line
	}
	var qe *recommend.QueryError
	if errors.As(err, &qe) {
		details["query"] = qe.Index + 1
	}
	rw.ErrorWithDetails(http.StatusUnprocessableEntity, code, err.Error(), details)
}

var errorCodes = map[string]string{
	"syntax":     ErrCodeSyntax,
	"shape":      ErrCodeInvalidShape,
	"range":      ErrCodeRatingOutOfRange,
	"degenerate": ErrCodeDegenerateRow,
	"algorithm":  ErrCodeUnsupportedAlgo,
	"query":      ErrCodeInvalidQuery,
}
