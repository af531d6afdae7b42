// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package ratings

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and normalization.
var (
	// ErrBadShape indicates non-positive matrix dimensions.
	ErrBadShape = errors.New("ratings: invalid shape")

	// ErrRowLength indicates a row that does not have exactly one cell per column.
	ErrRowLength = errors.New("ratings: row length mismatch")

	// ErrRatingOutOfRange indicates a present rating outside the configured bounds.
	ErrRatingOutOfRange = errors.New("ratings: rating out of range")

	// ErrNotTranspose indicates the item-major and user-major matrices disagree.
	ErrNotTranspose = errors.New("ratings: matrices are not transposes")

	// ErrDegenerateRow indicates a row with no observed ratings.
	ErrDegenerateRow = errors.New("ratings: row has no observed ratings")

	// ErrNilMatrix indicates a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("ratings: nil matrix")
)

// DegenerateRowError reports which row has no observed ratings.
// It unwraps to ErrDegenerateRow.
type DegenerateRowError struct {
	Row int
}

func (e *DegenerateRowError) Error() string {
	return fmt.Sprintf("ratings: row %d has no observed ratings", e.Row)
}

// Unwrap allows errors.Is(err, ErrDegenerateRow).
func (e *DegenerateRowError) Unwrap() error {
	return ErrDegenerateRow
}

// CellError locates a bad cell in the source data.
type CellError struct {
	Row    int
	Column int
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell (%d, %d): %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
