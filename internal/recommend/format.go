// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package recommend

import (
	"math"
	"strconv"
)

// NotAvailable is printed for predictions without a value.
const NotAvailable = "N/A"

// Round rounds v to three decimal places, halves away from zero.
func Round(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// Collapse -0 so it never renders with a sign.
		return 0
	}
	return r
}

// Format renders v with exactly three fractional digits, independent of locale.
func Format(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', 3, 64)
}
