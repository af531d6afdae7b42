// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/ratingcf/internal/ratings"
)

// Engine answers prediction queries over one rating dataset.
// The dataset is normalized once at construction; Execute is safe for
// concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	scorer Scorer

	matrices   *ratings.Pair
	normalized *ratings.NormalizedPair

	queries        atomic.Int64
	noNeighbor     atomic.Int64
	neighborsTotal atomic.Int64
}

// NewEngine verifies and normalizes pair and returns an engine ready to
// answer queries.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, pair *ratings.Pair, scorer Scorer, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if scorer == nil {
		return nil, ErrNoScorer
	}
	if err := pair.Verify(); err != nil {
		return nil, err
	}

	normalized, err := ratings.NormalizeAll(pair, cfg.Degenerate)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		scorer:     scorer,
		matrices:   pair,
		normalized: normalized,
	}

	if excluded := normalized.ItemMajor.DegenerateRows(); len(excluded) > 0 {
		e.logger.Warn().Ints("items", excluded).Msg("items without ratings excluded from similarity")
	}
	if excluded := normalized.UserMajor.DegenerateRows(); len(excluded) > 0 {
		e.logger.Warn().Ints("users", excluded).Msg("users without ratings excluded from similarity")
	}

	e.logger.Debug().
		Int("items", pair.Items()).
		Int("users", pair.Users()).
		Str("scorer", scorer.Name()).
		Msg("engine ready")

	return e, nil
}

// Items returns the number of items in the dataset.
func (e *Engine) Items() int { return e.matrices.Items() }

// Users returns the number of users in the dataset.
func (e *Engine) Users() int { return e.matrices.Users() }

// MaxK returns the largest accepted neighbor budget.
func (e *Engine) MaxK() int {
	return max(e.matrices.Items(), e.matrices.Users())
}

// Validate checks that q can be answered against this dataset.
func (e *Engine) Validate(q Query) error {
	if !q.Algorithm.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(q.Algorithm))
	}
	if q.Item < 0 || q.Item >= e.Items() {
		return fmt.Errorf("%w: item %d not in [1, %d]", ErrQueryOutOfRange, q.Item+1, e.Items())
	}
	if q.User < 0 || q.User >= e.Users() {
		return fmt.Errorf("%w: user %d not in [1, %d]", ErrQueryOutOfRange, q.User+1, e.Users())
	}
	if q.K < 1 || q.K > e.MaxK() {
		return fmt.Errorf("%w: k %d not in [1, %d]", ErrInvalidK, q.K, e.MaxK())
	}
	return nil
}

// ValidateAll checks every query and reports the first failure as a
// *QueryError.
func (e *Engine) ValidateAll(queries []Query) error {
	for i, q := range queries {
		if err := e.Validate(q); err != nil {
			return &QueryError{Index: i, Query: q, Err: err}
		}
	}
	return nil
}

// orient picks the matrices and indices for q's algorithm.
func (e *Engine) orient(q Query) (pivot, target int, original *ratings.Matrix, normalized *ratings.Normalized) {
	if q.Algorithm == UserUser {
		return q.User, q.Item, e.matrices.UserMajor, e.normalized.UserMajor
	}
	return q.Item, q.User, e.matrices.ItemMajor, e.normalized.ItemMajor
}

// Similarities returns the ranked similarity list the given query would walk.
func (e *Engine) Similarities(q Query) ([]SimilarityEntry, error) {
	if err := e.Validate(q); err != nil {
		return nil, err
	}
	pivot, _, _, normalized := e.orient(q)
	return e.scorer.Similarities(pivot, normalized), nil
}

// Execute answers a single query.
func (e *Engine) Execute(q Query) (Prediction, error) {
	if err := e.Validate(q); err != nil {
		return Prediction{}, err
	}

	pivot, target, original, normalized := e.orient(q)
	ranked := e.scorer.Similarities(pivot, normalized)

	est, err := e.scorer.Recommend(pivot, target, q.K, ranked, original)
	if err != nil && !errors.Is(err, ErrNoQualifyingNeighbor) {
		return Prediction{}, fmt.Errorf("%s: %w", e.scorer.Name(), err)
	}
	e.queries.Add(1)

	var p Prediction
	if err == nil {
		e.neighborsTotal.Add(int64(est.Neighbors))
		p = Prediction{
			Query:     q,
			Value:     est.Value,
			Outcome:   OutcomeNeighbors,
			Neighbors: est.Neighbors,
		}
	} else {
		e.noNeighbor.Add(1)
		p = e.fallback(q, pivot, normalized)
	}

	e.logger.Debug().
		Str("algorithm", q.Algorithm.String()).
		Int("pivot", pivot).
		Int("target", target).
		Int("k", q.K).
		Int("neighbors", p.Neighbors).
		Str("outcome", p.Outcome.String()).
		Msg("query answered")

	return p, nil
}

// fallback applies the configured no-neighbor policy.
func (e *Engine) fallback(q Query, pivot int, normalized *ratings.Normalized) Prediction {
	p := Prediction{Query: q, Outcome: OutcomeNone}

	switch e.config.NoNeighbor {
	case NoNeighborZero:
		p.Outcome = OutcomeZero
	case NoNeighborRowMean:
		if mean, ok := normalized.Mean(pivot); ok {
			p.Value = mean
			p.Outcome = OutcomeRowMean
		}
	case NoNeighborNone:
	}

	return p
}

// ExecuteAll validates every query first, then answers them in input order.
// No prediction is returned if any query is invalid.
func (e *Engine) ExecuteAll(ctx context.Context, queries []Query) ([]Prediction, error) {
	if err := e.ValidateAll(queries); err != nil {
		return nil, err
	}

	out := make([]Prediction, len(queries))

	if e.config.Workers <= 1 || len(queries) <= 1 {
		for i, q := range queries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			p, err := e.Execute(q)
			if err != nil {
				return nil, &QueryError{Index: i, Query: q, Err: err}
			}
			out[i] = p
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := e.Execute(q)
			if err != nil {
				return &QueryError{Index: i, Query: q, Err: err}
			}
			out[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Queries:        e.queries.Load(),
		NoNeighbor:     e.noNeighbor.Load(),
		NeighborsTotal: e.neighborsTotal.Load(),
	}
}
