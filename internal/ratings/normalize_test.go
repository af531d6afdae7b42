// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package ratings

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNormalize(t *testing.T) {
	n, err := Normalize(mustMatrix(t, sampleRows), DegenerateReject)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := [][]float64{
		{-1.25, -0.25, 0, -0.25, 1.75},
		{-4.0 / 3, 0, -1.0 / 3, 0, 5.0 / 3},
		{1.0 / 3, -5.0 / 3, 0, 4.0 / 3, 0},
		{0, -4.0 / 3, 2.0 / 3, 0, 2.0 / 3},
		{-5.0 / 3, 0, 1.0 / 3, 4.0 / 3, 0},
	}

	for i, row := range want {
		for j, w := range row {
			if got := n.At(i, j); math.Abs(got-w) > epsilon {
				t.Errorf("At(%d, %d) = %f, want %f", i, j, got, w)
			}
		}
	}

	mean, ok := n.Mean(0)
	if !ok || math.Abs(mean-2.25) > epsilon {
		t.Errorf("Mean(0) = %f, %v, want 2.25, true", mean, ok)
	}
}

func TestNormalize_RowsSumToZero(t *testing.T) {
	m := mustMatrix(t, sampleRows)
	for _, orient := range []*Matrix{m, m.Transpose()} {
		n, err := Normalize(orient, DegenerateReject)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		for i := 0; i < n.Rows(); i++ {
			var sum, ss float64
			for _, v := range n.Row(i) {
				sum += v
				ss += v * v
			}
			if math.Abs(sum) > epsilon {
				t.Errorf("row %d sums to %f, want 0", i, sum)
			}
			if math.Abs(ss-n.SumSquares(i)) > epsilon {
				t.Errorf("SumSquares(%d) = %f, want %f", i, n.SumSquares(i), ss)
			}
		}
	}
}

func TestNormalize_MissingBecomesZero(t *testing.T) {
	m := mustMatrix(t, [][]Rating{{X, 3, X, 5}})
	n, err := Normalize(m, DegenerateReject)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if n.At(0, 0) != 0 || n.At(0, 2) != 0 {
		t.Errorf("missing cells = %f, %f, want 0, 0", n.At(0, 0), n.At(0, 2))
	}
	if n.At(0, 1) != -1 || n.At(0, 3) != 1 {
		t.Errorf("present cells = %f, %f, want -1, 1", n.At(0, 1), n.At(0, 3))
	}
}

func TestNormalize_ConstantRowIsZeroVector(t *testing.T) {
	m := mustMatrix(t, [][]Rating{{3, 3, X}})
	n, err := Normalize(m, DegenerateReject)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if n.SumSquares(0) != 0 {
		t.Errorf("SumSquares(0) = %f, want 0", n.SumSquares(0))
	}
	if n.IsDegenerate(0) {
		t.Error("constant row reported as degenerate")
	}
}

func TestNormalize_DegenerateRow(t *testing.T) {
	rows := [][]Rating{
		{1, 2, 3},
		{X, X, X},
		{4, X, 5},
	}

	t.Run("reject", func(t *testing.T) {
		_, err := Normalize(mustMatrix(t, rows), DegenerateReject)
		if !errors.Is(err, ErrDegenerateRow) {
			t.Fatalf("error = %v, want ErrDegenerateRow", err)
		}
		var de *DegenerateRowError
		if !errors.As(err, &de) || de.Row != 1 {
			t.Errorf("error = %v, want DegenerateRowError for row 1", err)
		}
	})

	t.Run("exclude", func(t *testing.T) {
		n, err := Normalize(mustMatrix(t, rows), DegenerateExclude)
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if !n.IsDegenerate(1) {
			t.Error("IsDegenerate(1) = false, want true")
		}
		if _, ok := n.Mean(1); ok {
			t.Error("Mean(1) ok = true, want false")
		}
		for j, v := range n.Row(1) {
			if v != 0 {
				t.Errorf("At(1, %d) = %f, want 0", j, v)
			}
		}
		if got := n.DegenerateRows(); len(got) != 1 || got[0] != 1 {
			t.Errorf("DegenerateRows() = %v, want [1]", got)
		}
	})
}

func TestNormalizeAll_ReportsOrientation(t *testing.T) {
	// Every item has a rating, but user 2 rated nothing.
	rows := [][]Rating{
		{1, 2, X},
		{3, X, X},
	}
	pair, err := BuildMatrices(2, 3, RowsSource(rows))
	if err != nil {
		t.Fatalf("BuildMatrices() error = %v", err)
	}

	_, err = NormalizeAll(pair, DegenerateReject)
	var de *DegenerateRowError
	if !errors.As(err, &de) || de.Row != 2 {
		t.Errorf("NormalizeAll() error = %v, want degenerate user row 2", err)
	}

	np, err := NormalizeAll(pair, DegenerateExclude)
	if err != nil {
		t.Fatalf("NormalizeAll() exclude error = %v", err)
	}
	if !np.UserMajor.IsDegenerate(2) || np.ItemMajor.IsDegenerate(0) {
		t.Error("degenerate flags do not match the user-major orientation")
	}
}

func TestParseDegeneratePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DegeneratePolicy
		wantErr bool
	}{
		{"", DegenerateReject, false},
		{"reject", DegenerateReject, false},
		{"Exclude", DegenerateExclude, false},
		{" exclude ", DegenerateExclude, false},
		{"drop", DegenerateReject, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDegeneratePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDegeneratePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDegeneratePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
