// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package batch

import (
	"errors"
	"fmt"

	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

var (
	// ErrSyntax indicates input that does not follow the batch text format.
	ErrSyntax = errors.New("batch: syntax error")

	// ErrTooManyQueries indicates a query count above the configured limit.
	ErrTooManyQueries = errors.New("batch: too many queries")

	// ErrDimensionTooLarge indicates a matrix side above the configured limit.
	ErrDimensionTooLarge = errors.New("batch: dimension too large")
)

// LineError attaches the 1-based input line to a load failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func syntaxErrorf(line int, format string, args ...any) error {
	return &LineError{
		Line: line,
		Err:  fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)),
	}
}

// ErrorKind classifies a load failure for metrics and API error codes.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSyntax):
		return "syntax"
	case errors.Is(err, ratings.ErrBadShape),
		errors.Is(err, ratings.ErrRowLength),
		errors.Is(err, ratings.ErrNotTranspose),
		errors.Is(err, ErrDimensionTooLarge),
		errors.Is(err, ErrTooManyQueries):
		return "shape"
	case errors.Is(err, ratings.ErrRatingOutOfRange):
		return "range"
	case errors.Is(err, ratings.ErrDegenerateRow):
		return "degenerate"
	case errors.Is(err, recommend.ErrUnsupportedAlgorithm):
		return "algorithm"
	case errors.Is(err, recommend.ErrQueryOutOfRange),
		errors.Is(err, recommend.ErrInvalidK):
		return "query"
	default:
		return "other"
	}
}
