// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

const maxLineBytes = 1 << 20

// Options bounds what Parse accepts.
type Options struct {
	// MissingMarker is the token for an unrated cell. Matched case-insensitively.
	MissingMarker string

	// MaxQueries limits the number of query lines.
	MaxQueries int

	// MaxDimension limits both the item and user count.
	MaxDimension int

	// MaxCells limits items*users. The dense matrices are sized from the
	// header, so this bounds memory before any row is read.
	MaxCells int

	// Bounds is the accepted rating scale.
	Bounds ratings.Bounds
}

// DefaultOptions returns the limits used when none are configured.
func DefaultOptions() Options {
	return Options{
		MissingMarker: "X",
		MaxQueries:    100,
		MaxDimension:  10000,
		MaxCells:      1_000_000,
		Bounds:        ratings.DefaultBounds,
	}
}

// CheckShape rejects matrix dimensions outside the configured limits.
func (o Options) CheckShape(items, users int) error {
	if items <= 0 || users <= 0 {
		return fmt.Errorf("%w: %dx%d", ratings.ErrBadShape, items, users)
	}
	if o.MaxDimension > 0 && (items > o.MaxDimension || users > o.MaxDimension) {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, items, users, o.MaxDimension)
	}
	// Division keeps items*users from overflowing.
	if o.MaxCells > 0 && items > o.MaxCells/users {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensionTooLarge, items, users, o.MaxCells)
	}
	return nil
}

// Job is a fully parsed batch.
type Job struct {
	Matrices *ratings.Pair
	Queries  []recommend.Query

	// QueryLines holds the input line of each query, for error reporting.
	QueryLines []int
}

// Parse reads a batch in the text format:
//
//	N M
//	<N lines of M ratings or the missing marker>
//	Q
//	<Q lines of: item user algorithm k>
//
// Item and user are 1-based. Blank lines are ignored and CRLF line endings
// are accepted. Parse stops at the first error.
func Parse(r io.Reader, opts Options) (*Job, error) {
	if opts.MissingMarker == "" {
		opts.MissingMarker = DefaultOptions().MissingMarker
	}

	p := newParser(r, opts)

	items, users, err := p.header()
	if err != nil {
		return nil, err
	}

	pair, err := ratings.BuildMatrices(items, users, p, ratings.WithBounds(opts.Bounds))
	if err != nil {
		var le *LineError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LineError{Line: p.line, Err: err}
	}

	queries, lines, err := p.queries()
	if err != nil {
		return nil, err
	}

	if err := p.trailing(); err != nil {
		return nil, err
	}

	return &Job{
		Matrices:   pair,
		Queries:    queries,
		QueryLines: lines,
	}, nil
}

type parser struct {
	scanner *bufio.Scanner
	opts    Options
	line    int
}

func newParser(r io.Reader, opts Options) *parser {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &parser{scanner: s, opts: opts}
}

// next returns the fields of the next non-blank line.
func (p *parser) next(what string) ([]string, error) {
	for p.scanner.Scan() {
		p.line++
		fields := strings.Fields(p.scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, &LineError{Line: p.line + 1, Err: fmt.Errorf("read input: %w", err)}
	}
	return nil, syntaxErrorf(p.line+1, "unexpected end of input, expected %s", what)
}

func (p *parser) ints(fields []string, names ...string) ([]int, error) {
	if len(fields) != len(names) {
		return nil, syntaxErrorf(p.line, "expected %d fields (%s), got %d",
			len(names), strings.Join(names, " "), len(fields))
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, syntaxErrorf(p.line, "%s: %q is not an integer", names[i], f)
		}
		out[i] = v
	}
	return out, nil
}

func (p *parser) header() (items, users int, err error) {
	fields, err := p.next("matrix dimensions")
	if err != nil {
		return 0, 0, err
	}
	dims, err := p.ints(fields, "items", "users")
	if err != nil {
		return 0, 0, err
	}
	items, users = dims[0], dims[1]

	if err := p.opts.CheckShape(items, users); err != nil {
		return 0, 0, &LineError{Line: p.line, Err: err}
	}
	return items, users, nil
}

// NextRow implements ratings.CellSource over the matrix section.
func (p *parser) NextRow(i, users int) ([]ratings.Rating, error) {
	fields, err := p.next(fmt.Sprintf("ratings for item %d", i+1))
	if err != nil {
		return nil, err
	}
	if len(fields) != users {
		return nil, &LineError{
			Line: p.line,
			Err:  fmt.Errorf("%w: item %d has %d cells, want %d", ratings.ErrRowLength, i+1, len(fields), users),
		}
	}

	row := make([]ratings.Rating, users)
	for j, f := range fields {
		r, err := ParseCell(f, p.opts.MissingMarker)
		if err != nil {
			return nil, &LineError{Line: p.line, Err: fmt.Errorf("item %d user %d: %w", i+1, j+1, err)}
		}
		row[j] = r
	}
	return row, nil
}

// ParseCell reads one matrix token: an integer rating or the missing marker.
// The marker is matched case-insensitively. 0 is rejected so that a literal
// zero is never mistaken for a missing cell. Bounds are checked later, when
// the matrix is built.
func ParseCell(token, marker string) (ratings.Rating, error) {
	if strings.EqualFold(token, marker) {
		return ratings.Missing, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return ratings.Missing, fmt.Errorf("%w: %q is neither a rating nor %q", ErrSyntax, token, marker)
	}
	if ratings.Rating(v) == ratings.Missing {
		return ratings.Missing, fmt.Errorf("%w: 0 is not a rating, use %q", ratings.ErrRatingOutOfRange, marker)
	}
	return ratings.Rating(v), nil
}

func (p *parser) queries() ([]recommend.Query, []int, error) {
	fields, err := p.next("query count")
	if err != nil {
		return nil, nil, err
	}
	counts, err := p.ints(fields, "queries")
	if err != nil {
		return nil, nil, err
	}
	n := counts[0]
	if n < 0 {
		return nil, nil, syntaxErrorf(p.line, "query count %d is negative", n)
	}
	if p.opts.MaxQueries > 0 && n > p.opts.MaxQueries {
		return nil, nil, &LineError{Line: p.line, Err: fmt.Errorf("%w: %d exceeds %d", ErrTooManyQueries, n, p.opts.MaxQueries)}
	}

	queries := make([]recommend.Query, 0, n)
	lines := make([]int, 0, n)
	for i := 0; i < n; i++ {
		fields, err := p.next(fmt.Sprintf("query %d", i+1))
		if err != nil {
			return nil, nil, err
		}
		v, err := p.ints(fields, "item", "user", "algorithm", "k")
		if err != nil {
			return nil, nil, err
		}
		q, err := recommend.NewQuery(v[0], v[1], v[2], v[3])
		if err != nil {
			return nil, nil, &LineError{Line: p.line, Err: err}
		}
		queries = append(queries, q)
		lines = append(lines, p.line)
	}
	return queries, lines, nil
}

func (p *parser) trailing() error {
	for p.scanner.Scan() {
		p.line++
		if strings.TrimSpace(p.scanner.Text()) != "" {
			return syntaxErrorf(p.line, "unexpected data after the last query")
		}
	}
	if err := p.scanner.Err(); err != nil {
		return &LineError{Line: p.line + 1, Err: fmt.Errorf("read input: %w", err)}
	}
	return nil
}
