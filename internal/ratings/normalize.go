// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package ratings

import (
	"fmt"
	"strings"
)

// DegeneratePolicy controls how Normalize treats rows with no observed ratings.
type DegeneratePolicy int

const (
	// DegenerateReject fails normalization with a *DegenerateRowError.
	DegenerateReject DegeneratePolicy = iota

	// DegenerateExclude keeps the row as an all-zero vector. Its similarity
	// to every other row is 0, so it never qualifies as a neighbor.
	DegenerateExclude
)

// String returns the configuration name of the policy.
func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateReject:
		return "reject"
	case DegenerateExclude:
		return "exclude"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
}

// ParseDegeneratePolicy maps a configuration value to a policy.
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return DegenerateReject, nil
	case "exclude":
		return DegenerateExclude, nil
	default:
		return DegenerateReject, fmt.Errorf("unknown degenerate row policy %q (want reject or exclude)", s)
	}
}

// Normalized is a mean-centered copy of a Matrix. Missing cells are 0.0.
type Normalized struct {
	rows       int
	cols       int
	values     []float64
	means      []float64
	sumSquares []float64
	degenerate []bool
}

// Normalize subtracts each row's mean over its observed cells.
func Normalize(m *Matrix, policy DegeneratePolicy) (*Normalized, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	n := &Normalized{
		rows:       m.rows,
		cols:       m.cols,
		values:     make([]float64, len(m.cells)),
		means:      make([]float64, m.rows),
		sumSquares: make([]float64, m.rows),
		degenerate: make([]bool, m.rows),
	}

	for i := 0; i < m.rows; i++ {
		row := m.Row(i)

		var sum float64
		var count int
		for _, r := range row {
			if r != Missing {
				sum += float64(r)
				count++
			}
		}

		if count == 0 {
			if policy != DegenerateExclude {
				return nil, &DegenerateRowError{Row: i}
			}
			n.degenerate[i] = true
			continue
		}

		mean := sum / float64(count)
		n.means[i] = mean

		out := n.values[i*m.cols : (i+1)*m.cols]
		var ss float64
		for j, r := range row {
			if r == Missing {
				continue
			}
			v := float64(r) - mean
			out[j] = v
			ss += v * v
		}
		n.sumSquares[i] = ss
	}

	return n, nil
}

// Rows returns the number of rows.
func (n *Normalized) Rows() int { return n.rows }

// Cols returns the number of columns.
func (n *Normalized) Cols() int { return n.cols }

// At returns the centered value at (row, col).
func (n *Normalized) At(row, col int) float64 {
	return n.values[row*n.cols+col]
}

// Row returns a read-only view of one centered row.
func (n *Normalized) Row(i int) []float64 {
	return n.values[i*n.cols : (i+1)*n.cols : (i+1)*n.cols]
}

// Mean returns the mean of row i's observed ratings. ok is false for a
// degenerate row.
func (n *Normalized) Mean(i int) (mean float64, ok bool) {
	if n.degenerate[i] {
		return 0, false
	}
	return n.means[i], true
}

// SumSquares returns the squared Euclidean norm of centered row i.
func (n *Normalized) SumSquares(i int) float64 {
	return n.sumSquares[i]
}

// IsDegenerate reports whether row i had no observed ratings.
func (n *Normalized) IsDegenerate(i int) bool {
	return n.degenerate[i]
}

// DegenerateRows returns the indices of all degenerate rows.
func (n *Normalized) DegenerateRows() []int {
	var out []int
	for i, d := range n.degenerate {
		if d {
			out = append(out, i)
		}
	}
	return out
}

// NormalizedPair holds both orientations after normalization.
type NormalizedPair struct {
	ItemMajor *Normalized
	UserMajor *Normalized
}

// NormalizeAll normalizes both orientations of p with the same policy.
func NormalizeAll(p *Pair, policy DegeneratePolicy) (*NormalizedPair, error) {
	if p == nil {
		return nil, ErrNilMatrix
	}
	im, err := Normalize(p.ItemMajor, policy)
	if err != nil {
		return nil, fmt.Errorf("item-major: %w", err)
	}
	um, err := Normalize(p.UserMajor, policy)
	if err != nil {
		return nil, fmt.Errorf("user-major: %w", err)
	}
	return &NormalizedPair{ItemMajor: im, UserMajor: um}, nil
}
