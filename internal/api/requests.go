// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package api

import (
	"fmt"

	"github.com/tomtom215/ratingcf/internal/batch"
	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

// PredictionRequest is the body of POST /api/v1/predictions.
// Ratings is item-major: one row per item, one token per user.
type PredictionRequest struct {
	Ratings          [][]string     `json:"ratings" validate:"required,min=1,dive,min=1"`
	MissingMarker    string         `json:"missing_marker,omitempty" validate:"omitempty,max=16"`
	NoNeighborPolicy string         `json:"no_neighbor_policy,omitempty" validate:"omitempty,policy"`
	Queries          []QueryRequest `json:"queries" validate:"required,min=1,dive"`
}

// QueryRequest is one query with 1-based coordinates.
type QueryRequest struct {
	Item      int `json:"item" validate:"min=1"`
	User      int `json:"user" validate:"min=1"`
	Algorithm int `json:"algorithm" validate:"algorithm"`
	K         int `json:"k" validate:"min=1"`
}

// PredictionResult is one answered query.
type PredictionResult struct {
	Item          int      `json:"item"`
	User          int      `json:"user"`
	Algorithm     int      `json:"algorithm"`
	AlgorithmName string   `json:"algorithm_name"`
	K             int      `json:"k"`
	Value         *float64 `json:"value"`
	Formatted     string   `json:"formatted"`
	Outcome       string   `json:"outcome"`
	Neighbors     int      `json:"neighbors"`
}

// PredictionResponse is the data payload of a successful prediction call.
type PredictionResponse struct {
	Items       int                `json:"items"`
	Users       int                `json:"users"`
	Predictions []PredictionResult `json:"predictions"`
}

// matrices parses the rating tokens and builds both orientations.
func (req *PredictionRequest) matrices(opts batch.Options) (*ratings.Pair, error) {
	marker := req.MissingMarker
	if marker == "" {
		marker = opts.MissingMarker
	}

	items := len(req.Ratings)
	users := len(req.Ratings[0])
	if err := opts.CheckShape(items, users); err != nil {
		return nil, err
	}

	rows := make(ratings.RowsSource, items)
	for i, tokens := range req.Ratings {
		row := make([]ratings.Rating, len(tokens))
		for j, tok := range tokens {
			r, err := batch.ParseCell(tok, marker)
			if err != nil {
				return nil, fmt.Errorf("ratings[%d][%d]: %w", i, j, err)
			}
			row[j] = r
		}
		rows[i] = row
	}

	return ratings.BuildMatrices(items, users, rows, ratings.WithBounds(opts.Bounds))
}

// queries converts the request queries, enforcing the configured limit.
func (req *PredictionRequest) queries(maxQueries int) ([]recommend.Query, error) {
	if maxQueries > 0 && len(req.Queries) > maxQueries {
		return nil, fmt.Errorf("%w: %d exceeds %d", batch.ErrTooManyQueries, len(req.Queries), maxQueries)
	}
	out := make([]recommend.Query, len(req.Queries))
	for i, q := range req.Queries {
		query, err := recommend.NewQuery(q.Item, q.User, q.Algorithm, q.K)
		if err != nil {
			return nil, &recommend.QueryError{Index: i, Query: query, Err: err}
		}
		out[i] = query
	}
	return out, nil
}

// engineConfig applies the request's policy override to base.
func (req *PredictionRequest) engineConfig(base *recommend.Config) (*recommend.Config, error) {
	if req.NoNeighborPolicy == "" {
		return base, nil
	}
	policy, err := recommend.ParseNoNeighborPolicy(req.NoNeighborPolicy)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	cfg.NoNeighbor = policy
	return cfg, nil
}

func newPredictionResult(p recommend.Prediction) PredictionResult {
	res := PredictionResult{
		Item:          p.Query.Item + 1,
		User:          p.Query.User + 1,
		Algorithm:     int(p.Query.Algorithm),
		AlgorithmName: p.Query.Algorithm.String(),
		K:             p.Query.K,
		Formatted:     p.String(),
		Outcome:       p.Outcome.String(),
		Neighbors:     p.Neighbors,
	}
	if p.HasValue() {
		v := recommend.Round(p.Value)
		res.Value = &v
	}
	return res
}
