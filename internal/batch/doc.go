// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package batch reads prediction batches in the line-oriented text format,
// runs them through a recommend.Engine and writes one formatted value per
// query.
//
// A batch is all-or-nothing: any parse, shape, range or query error aborts
// before the first result is written, and the error names the input line.
package batch
