// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package algorithms implements the neighborhood scorer used by the
// prediction engine.
//
// # KNN
//
// KNN ranks the rows of a mean-centered matrix by cosine similarity to a
// pivot row and predicts a missing cell as the similarity-weighted average
// of the k best neighbors that actually rated the target column:
//
//	prediction = sum(sim(p, n) * r(n, t)) / sum(sim(p, n))
//
// Only neighbors with strictly positive similarity count. The pivot row is
// ranked first with score 1.0 but is never used as its own neighbor.
//
// The same scorer serves both orientations. Item-item queries pass the
// item-major matrices with the item as pivot; user-user queries pass the
// user-major matrices with the user as pivot.
//
// # Thread Safety
//
// KNN holds no mutable state and is safe for concurrent use.
package algorithms
