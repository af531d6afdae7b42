// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package ratings

import (
	"fmt"
	"strconv"
)

// Rating is a single cell of a rating matrix.
type Rating int

// Missing marks an unrated cell.
const Missing Rating = 0

// Bounds is the inclusive range a present rating must fall in.
type Bounds struct {
	Min Rating
	Max Rating
}

// DefaultBounds is the 1-5 star scale.
var DefaultBounds = Bounds{Min: 1, Max: 5}

// Contains reports whether r is a valid present rating.
func (b Bounds) Contains(r Rating) bool {
	return r >= b.Min && r <= b.Max
}

// Validate checks that the bounds are usable.
func (b Bounds) Validate() error {
	if b.Min <= Missing {
		return fmt.Errorf("min rating must be greater than %d, got %d", Missing, b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("max rating must be >= min rating (%d), got %d", b.Min, b.Max)
	}
	return nil
}

// String renders a rating, with "X" for Missing.
func (r Rating) String() string {
	if r == Missing {
		return "X"
	}
	return strconv.Itoa(int(r))
}

// Matrix is a dense row-major grid of ratings. It is immutable once built.
type Matrix struct {
	rows  int
	cols  int
	cells []Rating
}

func newMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]Rating, rows*cols),
	}, nil
}

// NewMatrix builds a matrix from explicit rows. Every row must have the same
// length and every present cell must fall within DefaultBounds.
func NewMatrix(rows [][]Rating) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	m, err := newMatrix(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := m.fillRow(i, row, DefaultBounds); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Matrix) fillRow(i int, row []Rating, bounds Bounds) error {
	if len(row) != m.cols {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLength, i, len(row), m.cols)
	}
	for j, r := range row {
		if r != Missing && !bounds.Contains(r) {
			return &CellError{
				Row:    i,
				Column: j,
				Err:    fmt.Errorf("%w: %d not in [%d, %d]", ErrRatingOutOfRange, r, bounds.Min, bounds.Max),
			}
		}
	}
	copy(m.cells[i*m.cols:(i+1)*m.cols], row)
	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the rating at (row, col). Indices must be in range.
func (m *Matrix) At(row, col int) Rating {
	return m.cells[row*m.cols+col]
}

// Row returns a read-only view of one row.
func (m *Matrix) Row(i int) []Rating {
	return m.cells[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Observed returns the number of present ratings in row i.
func (m *Matrix) Observed(i int) int {
	n := 0
	for _, r := range m.Row(i) {
		if r != Missing {
			n++
		}
	}
	return n
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{
		rows:  m.cols,
		cols:  m.rows,
		cells: make([]Rating, len(m.cells)),
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.cells[j*t.cols+i] = m.cells[i*m.cols+j]
		}
	}
	return t
}

// Pair holds the same ratings in both orientations.
// ItemMajor[i][u] == UserMajor[u][i] for every cell.
type Pair struct {
	ItemMajor *Matrix
	UserMajor *Matrix
}

// Items returns the number of items.
func (p *Pair) Items() int { return p.ItemMajor.Rows() }

// Users returns the number of users.
func (p *Pair) Users() int { return p.ItemMajor.Cols() }

// Verify checks that the two orientations agree cell for cell.
func (p *Pair) Verify() error {
	if p == nil || p.ItemMajor == nil || p.UserMajor == nil {
		return ErrNilMatrix
	}
	im, um := p.ItemMajor, p.UserMajor
	if im.rows != um.cols || im.cols != um.rows {
		return fmt.Errorf("%w: item-major %dx%d, user-major %dx%d",
			ErrNotTranspose, im.rows, im.cols, um.rows, um.cols)
	}
	for i := 0; i < im.rows; i++ {
		for u := 0; u < im.cols; u++ {
			if im.At(i, u) != um.At(u, i) {
				return &CellError{
					Row:    i,
					Column: u,
					Err:    fmt.Errorf("%w: %s vs %s", ErrNotTranspose, im.At(i, u), um.At(u, i)),
				}
			}
		}
	}
	return nil
}

// CellSource yields the item-major rows of a dataset, one call per item.
type CellSource interface {
	// NextRow returns the ratings of item i across all users.
	NextRow(i, users int) ([]Rating, error)
}

// RowsSource serves rows from an in-memory slice.
type RowsSource [][]Rating

// NextRow implements CellSource.
func (s RowsSource) NextRow(i, users int) ([]Rating, error) {
	if i >= len(s) {
		return nil, fmt.Errorf("%w: row %d not present, only %d rows", ErrRowLength, i, len(s))
	}
	return s[i], nil
}

// BuildOption configures BuildMatrices.
type BuildOption func(*buildOptions)

type buildOptions struct {
	bounds Bounds
}

// WithBounds overrides the accepted rating range.
func WithBounds(b Bounds) BuildOption {
	return func(o *buildOptions) {
		o.bounds = b
	}
}

// BuildMatrices reads items rows of users cells from src and returns both
// orientations of the dataset.
func BuildMatrices(items, users int, src CellSource, opts ...BuildOption) (*Pair, error) {
	o := buildOptions{bounds: DefaultBounds}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.bounds.Validate(); err != nil {
		return nil, err
	}

	im, err := newMatrix(items, users)
	if err != nil {
		return nil, err
	}
	for i := 0; i < items; i++ {
		row, err := src.NextRow(i, users)
		if err != nil {
			return nil, err
		}
		if err := im.fillRow(i, row, o.bounds); err != nil {
			return nil, err
		}
	}

	return &Pair{ItemMajor: im, UserMajor: im.Transpose()}, nil
}
