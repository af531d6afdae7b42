// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package recommend

import (
	"fmt"

	"github.com/tomtom215/ratingcf/internal/ratings"
)

// AlgorithmType selects the orientation a query is answered in.
type AlgorithmType int

const (
	// ItemItem ranks items similar to the query item and averages the
	// query user's ratings of them.
	ItemItem AlgorithmType = 0

	// UserUser ranks users similar to the query user and averages their
	// ratings of the query item.
	UserUser AlgorithmType = 1
)

// String returns the wire name of the algorithm.
func (a AlgorithmType) String() string {
	switch a {
	case ItemItem:
		return "item-item"
	case UserUser:
		return "user-user"
	default:
		return fmt.Sprintf("AlgorithmType(%d)", int(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a AlgorithmType) Valid() bool {
	return a == ItemItem || a == UserUser
}

// ParseAlgorithmType maps the external numeric code (0 or 1) to an AlgorithmType.
func ParseAlgorithmType(code int) (AlgorithmType, error) {
	a := AlgorithmType(code)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, code)
	}
	return a, nil
}

// Query asks for one predicted rating. Item and User are zero-based.
type Query struct {
	Item      int           `json:"item"`
	User      int           `json:"user"`
	Algorithm AlgorithmType `json:"algorithm"`
	K         int           `json:"k"`
}

// NewQuery converts one-based external coordinates into a Query.
func NewQuery(item, user, algorithm, k int) (Query, error) {
	alg, err := ParseAlgorithmType(algorithm)
	if err != nil {
		return Query{}, err
	}
	return Query{
		Item:      item - 1,
		User:      user - 1,
		Algorithm: alg,
		K:         k,
	}, nil
}

func (q Query) String() string {
	return fmt.Sprintf("item=%d user=%d algorithm=%s k=%d", q.Item+1, q.User+1, q.Algorithm, q.K)
}

// SimilarityEntry is one row of a ranked similarity list.
type SimilarityEntry struct {
	Row   int
	Score float64
}

// Estimate is the raw result of a neighbor walk.
type Estimate struct {
	Value     float64
	Neighbors int
	WeightSum float64
}

// Outcome says how a prediction value was produced.
type Outcome int

const (
	// OutcomeNeighbors means the value is a similarity-weighted average.
	OutcomeNeighbors Outcome = iota

	// OutcomeRowMean means no neighbor qualified and the pivot row mean was used.
	OutcomeRowMean

	// OutcomeZero means no neighbor qualified and 0 was reported.
	OutcomeZero

	// OutcomeNone means no value could be produced.
	OutcomeNone
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNeighbors:
		return "neighbors"
	case OutcomeRowMean:
		return "row_mean"
	case OutcomeZero:
		return "zero"
	case OutcomeNone:
		return "none"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Prediction is the answer to a single Query.
type Prediction struct {
	Query     Query   `json:"query"`
	Value     float64 `json:"value"`
	Outcome   Outcome `json:"outcome"`
	Neighbors int     `json:"neighbors"`
}

// HasValue reports whether the prediction carries a number.
func (p Prediction) HasValue() bool {
	return p.Outcome != OutcomeNone
}

// String renders the value the way batch output prints it.
func (p Prediction) String() string {
	if !p.HasValue() {
		return NotAvailable
	}
	return Format(p.Value)
}

// Scorer computes similarity rankings and neighbor estimates over one
// orientation of the rating data. Implementations live in the algorithms
// package.
type Scorer interface {
	// Name returns the scorer identifier used in logs.
	Name() string

	// Similarities returns every row of data ranked by similarity to pivot,
	// highest first. The pivot itself is included with score 1.0.
	Similarities(pivot int, data *ratings.Normalized) []SimilarityEntry

	// Recommend walks ranked and averages the original ratings at column
	// target of at most k qualifying neighbors. It returns
	// ErrNoQualifyingNeighbor when nothing qualified.
	Recommend(pivot, target, k int, ranked []SimilarityEntry, original *ratings.Matrix) (Estimate, error)
}

// Stats is a snapshot of engine activity.
type Stats struct {
	Queries        int64 `json:"queries"`
	NoNeighbor     int64 `json:"no_neighbor"`
	NeighborsTotal int64 `json:"neighbors_total"`
}
