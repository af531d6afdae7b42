// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package algorithms

import (
	"math"

	"github.com/tomtom215/ratingcf/internal/recommend"
)

// BaseAlgorithm provides the identifier shared by all scorers.
type BaseAlgorithm struct {
	name string
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{
		name: name,
	}
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// dot computes the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// cosine turns an inner product and two squared norms into a cosine
// similarity. A zero-length vector has similarity 0 to everything.
func cosine(dotProduct, sumSquaresA, sumSquaresB float64) float64 {
	if sumSquaresA == 0 || sumSquaresB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(sumSquaresA) * math.Sqrt(sumSquaresB))
}

// Ensure all scorers implement the interface.
var (
	_ recommend.Scorer = (*KNN)(nil)
)
