// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package validation checks API request structs with go-playground/validator.
//
// Besides the built-in rules it registers:
//
//	algorithm  int field holding a known algorithm code (0 or 1)
//	policy     string field naming a no-neighbor policy
//
// Field names in errors follow the json tags, with the path into nested
// slices, e.g. "queries[2].k".
package validation
