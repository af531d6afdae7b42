// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package ratings

const X = Missing

// sampleRows is the 5 item x 5 user dataset used across the package tests.
var sampleRows = [][]Rating{
	{1, 2, X, 2, 4},
	{2, X, 3, X, 5},
	{3, 1, X, 4, X},
	{X, 2, 4, X, 4},
	{1, X, 3, 4, X},
}
