// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

// Package cache provides a generic LRU cache with TTL.
//
// The API server keeps prepared engines in it so repeated requests over the
// same ratings skip parsing and normalization:
//
//	engines := cache.NewLRU[*recommend.Engine](32, 10*time.Minute)
//	if e, ok := engines.Get(digest); ok {
//		return e, nil
//	}
//
// Get, Add and Len are O(1). Values walks the list. All methods are safe
// for concurrent use.
package cache
