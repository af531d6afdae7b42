// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package ratings holds the sparse rating matrix and its normalized form.
//
// # Orientation
//
// A rating dataset is stored twice: an item-major matrix (rows are items,
// columns are users) and a user-major matrix (rows are users, columns are
// items). The two are built together by BuildMatrices and are guaranteed to
// be transposes of each other, so every row-oriented computation can run
// against whichever orientation the caller needs without re-indexing.
//
// # Missing Ratings
//
// Unrated cells hold the Missing sentinel. Missing is not a rating value and
// never participates in arithmetic; Normalize maps it to 0.0 after centering.
//
// # Normalization
//
// Normalize subtracts each row's mean over its observed cells. A row without
// a single observed rating has no mean and is called degenerate; the
// DegeneratePolicy decides whether such a row aborts normalization or is
// carried as an all-zero vector that never contributes to similarity.
//
// # Thread Safety
//
// Matrix and Normalized are immutable once built and safe for concurrent
// reads.
package ratings
