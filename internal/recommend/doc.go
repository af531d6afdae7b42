// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package recommend predicts missing ratings with neighborhood collaborative
// filtering.
//
// # Architecture
//
// An Engine owns one dataset in both orientations (see package ratings),
// normalizes it once, and dispatches each Query to a Scorer:
//
//   - ItemItem: pivot = item, target = user, item-major matrices
//   - UserUser: pivot = user, target = item, user-major matrices
//
// The Scorer ranks rows by similarity to the pivot and averages the
// original ratings of the best k neighbors that rated the target. When no
// neighbor qualifies, the engine's NoNeighborPolicy decides the outcome.
//
// # Usage
//
//	pair, err := ratings.BuildMatrices(items, users, src)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), pair, algorithms.NewKNN(), logger)
//
//	preds, err := engine.ExecuteAll(ctx, queries)
//	for _, p := range preds {
//	    fmt.Println(p)
//	}
//
// # Validation
//
// ExecuteAll validates every query before answering any of them, so a batch
// either succeeds as a whole or reports the first bad query as a
// *QueryError.
//
// # Thread Safety
//
// The engine is safe for concurrent use. The dataset is read-only after
// NewEngine returns and counters are atomic.
package recommend
