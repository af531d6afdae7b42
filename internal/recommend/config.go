// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/ratingcf/internal/ratings"
)

// NoNeighborPolicy decides what a query reports when no neighbor qualifies.
type NoNeighborPolicy int

const (
	// NoNeighborRowMean falls back to the mean of the pivot row's observed
	// ratings. A degenerate pivot row has no mean and yields OutcomeNone.
	NoNeighborRowMean NoNeighborPolicy = iota

	// NoNeighborNone reports the prediction as unavailable.
	NoNeighborNone

	// NoNeighborZero reports 0, formatted "0.000" like any other value.
	// Legacy output printed the same 0 as ".000".
	NoNeighborZero
)

// String returns the configuration name of the policy.
func (p NoNeighborPolicy) String() string {
	switch p {
	case NoNeighborRowMean:
		return "row_mean"
	case NoNeighborNone:
		return "none"
	case NoNeighborZero:
		return "zero"
	default:
		return fmt.Sprintf("NoNeighborPolicy(%d)", int(p))
	}
}

// ParseNoNeighborPolicy maps a configuration value to a policy.
func ParseNoNeighborPolicy(s string) (NoNeighborPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row_mean":
		return NoNeighborRowMean, nil
	case "none":
		return NoNeighborNone, nil
	case "zero":
		return NoNeighborZero, nil
	default:
		return NoNeighborRowMean, fmt.Errorf("unknown no-neighbor policy %q (want row_mean, none or zero)", s)
	}
}

// Config contains the engine's behavioral settings.
type Config struct {
	// Workers bounds concurrent query evaluation in ExecuteAll.
	// 1 evaluates queries sequentially.
	Workers int `json:"workers"`

	// NoNeighbor is applied when a neighbor walk finds nothing.
	NoNeighbor NoNeighborPolicy `json:"no_neighbor_policy"`

	// Degenerate is applied to rows without observed ratings.
	Degenerate ratings.DegeneratePolicy `json:"degenerate_rows"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers:    1,
		NoNeighbor: NoNeighborRowMean,
		Degenerate: ratings.DegenerateReject,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Workers > 256 {
		return fmt.Errorf("workers must be at most 256, got %d", c.Workers)
	}
	switch c.NoNeighbor {
	case NoNeighborRowMean, NoNeighborNone, NoNeighborZero:
	default:
		return fmt.Errorf("unknown no-neighbor policy %d", int(c.NoNeighbor))
	}
	switch c.Degenerate {
	case ratings.DegenerateReject, ratings.DegenerateExclude:
	default:
		return fmt.Errorf("unknown degenerate row policy %d", int(c.Degenerate))
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
