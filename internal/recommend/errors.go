// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm indicates an algorithm code other than 0 or 1.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrNoQualifyingNeighbor indicates a neighbor walk found nothing to average.
	ErrNoQualifyingNeighbor = errors.New("no qualifying neighbor")

	// ErrQueryOutOfRange indicates item or user coordinates outside the matrix.
	ErrQueryOutOfRange = errors.New("query out of range")

	// ErrInvalidK indicates a neighbor budget outside [1, max(items, users)].
	ErrInvalidK = errors.New("invalid neighbor budget")

	// ErrNoScorer indicates an engine was built without a scorer.
	ErrNoScorer = errors.New("no scorer configured")
)

// QueryError ties a validation failure to the query's position in the batch.
type QueryError struct {
	Index int
	Query Query
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d (%s): %v", e.Index+1, e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
