// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tomtom215/ratingcf/internal/recommend"
)

// WriteResults writes one formatted prediction per line, in order.
func WriteResults(w io.Writer, preds []recommend.Prediction) error {
	bw := bufio.NewWriter(w)
	for i, p := range preds {
		if _, err := bw.WriteString(p.String()); err != nil {
			return fmt.Errorf("write prediction %d: %w", i+1, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write prediction %d: %w", i+1, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush predictions: %w", err)
	}
	return nil
}
