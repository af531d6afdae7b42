// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package algorithms

import (
	"sort"

	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

// KNN implements neighborhood collaborative filtering with cosine
// similarity on mean-centered rows.
type KNN struct {
	BaseAlgorithm
}

// NewKNN creates a KNN scorer.
func NewKNN() *KNN {
	return &KNN{
		BaseAlgorithm: NewBaseAlgorithm("knn"),
	}
}

// Similarities scores every row of data against pivot and returns the list
// sorted by score, descending. Ties keep row order. The pivot's own entry is
// fixed at 1.0 regardless of its norm.
func (k *KNN) Similarities(pivot int, data *ratings.Normalized) []recommend.SimilarityEntry {
	rows := data.Rows()
	entries := make([]recommend.SimilarityEntry, rows)

	pivotRow := data.Row(pivot)
	pivotSS := data.SumSquares(pivot)

	for r := 0; r < rows; r++ {
		if r == pivot {
			entries[r] = recommend.SimilarityEntry{Row: r, Score: 1.0}
			continue
		}
		entries[r] = recommend.SimilarityEntry{
			Row:   r,
			Score: cosine(dot(pivotRow, data.Row(r)), pivotSS, data.SumSquares(r)),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries
}

// Recommend walks ranked in order and averages the original ratings at
// column target over at most budget neighbors. A neighbor qualifies when
// its score is positive, it is not the pivot, and it rated target.
func (k *KNN) Recommend(pivot, target, budget int, ranked []recommend.SimilarityEntry, original *ratings.Matrix) (recommend.Estimate, error) {
	var est recommend.Estimate
	var weighted float64

	for _, entry := range ranked {
		if est.Neighbors == budget {
			break
		}
		// Written as !(x > 0) so a NaN score never qualifies.
		if !(entry.Score > 0) {
			continue
		}
		if entry.Row == pivot {
			continue
		}
		r := original.At(entry.Row, target)
		if r == ratings.Missing {
			continue
		}

		est.Neighbors++
		est.WeightSum += entry.Score
		weighted += entry.Score * float64(r)
	}

	if est.Neighbors == 0 {
		return est, recommend.ErrNoQualifyingNeighbor
	}

	est.Value = weighted / est.WeightSum
	return est, nil
}
