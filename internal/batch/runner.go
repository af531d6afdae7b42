// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ratingcf/internal/metrics"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

// EngineFactory turns a parsed job into an engine. Serve mode plugs a
// caching factory in here; batch mode builds a fresh engine every time.
type EngineFactory func(job *Job) (*recommend.Engine, error)

// Runner parses, executes and writes prediction batches.
type Runner struct {
	opts    Options
	factory EngineFactory
	logger  zerolog.Logger
}

// NewRunner creates a runner that builds engines with cfg and scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRunner(opts Options, cfg *recommend.Config, scorer recommend.Scorer, logger zerolog.Logger) *Runner {
	return NewRunnerWithFactory(opts, func(job *Job) (*recommend.Engine, error) {
		return recommend.NewEngine(cfg, job.Matrices, scorer, logger)
	}, logger)
}

// NewRunnerWithFactory creates a runner with a custom engine factory.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRunnerWithFactory(opts Options, factory EngineFactory, logger zerolog.Logger) *Runner {
	return &Runner{
		opts:    opts,
		factory: factory,
		logger:  logger.With().Str("component", "batch").Logger(),
	}
}

// Predict parses in and answers every query. Load and validation failures
// are returned before any query runs.
func (r *Runner) Predict(ctx context.Context, in io.Reader) ([]recommend.Prediction, error) {
	job, err := Parse(in, r.opts)
	if err != nil {
		return nil, r.loadFailed(err)
	}

	engine, err := r.factory(job)
	if err != nil {
		return nil, r.loadFailed(err)
	}

	preds, err := engine.ExecuteAll(ctx, job.Queries)
	if err != nil {
		var qe *recommend.QueryError
		if errors.As(err, &qe) && qe.Index < len(job.QueryLines) {
			err = &LineError{Line: job.QueryLines[qe.Index], Err: err}
		}
		if kind := ErrorKind(err); kind != "other" {
			return nil, r.loadFailed(err)
		}
		return nil, err
	}

	for _, p := range preds {
		metrics.RecordPrediction(p.Query.Algorithm.String(), p.Outcome.String(), p.Neighbors)
	}
	return preds, nil
}

// Run processes one batch from in and writes the results to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	start := time.Now()

	preds, err := r.Predict(ctx, in)
	if err == nil {
		err = WriteResults(out, preds)
	}

	duration := time.Since(start)
	metrics.RecordBatch(duration, err)

	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	r.logger.Info().
		Int("queries", len(preds)).
		Dur("duration", duration).
		Msg("batch complete")

	return nil
}

func (r *Runner) loadFailed(err error) error {
	kind := ErrorKind(err)
	metrics.RecordLoadError(kind)
	r.logger.Error().Err(err).Str("kind", kind).Msg("batch rejected")
	return err
}
