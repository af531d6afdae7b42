// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package api

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/tomtom215/ratingcf/internal/metrics"
	"github.com/tomtom215/ratingcf/internal/ratings"
	"github.com/tomtom215/ratingcf/internal/recommend"
)

// engineKey digests the canonical matrix text together with every setting
// that changes what an engine answers.
func engineKey(pair *ratings.Pair, cfg *recommend.Config, scorer string) string {
	h := sha256.New()
	m := pair.ItemMajor

	fmt.Fprintf(h, "%s %s %s\n%d %d\n", scorer, cfg.NoNeighbor, cfg.Degenerate, m.Rows(), m.Cols())
	buf := make([]byte, 0, 2*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		buf = buf[:0]
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			if r := m.At(i, j); r == ratings.Missing {
				buf = append(buf, 'X')
			} else {
				buf = strconv.AppendInt(buf, int64(r), 10)
			}
		}
		buf = append(buf, '\n')
		_, _ = h.Write(buf)
	}
	_, _ = io.WriteString(h, strconv.Itoa(cfg.Workers))

	return hex.EncodeToString(h.Sum(nil))
}

// engineFor returns a prepared engine for pair, reusing a cached one when
// the same ratings were seen recently. The bool reports a cache hit.
func (h *Handler) engineFor(pair *ratings.Pair, cfg *recommend.Config) (*recommend.Engine, bool, error) {
	if h.engines == nil {
		e, err := recommend.NewEngine(cfg, pair, h.scorer, h.logger)
		return e, false, err
	}

	key := engineKey(pair, cfg, h.scorer.Name())
	if e, ok := h.engines.Get(key); ok {
		metrics.RecordEngineCache(true, h.engines.Len())
		return e, true, nil
	}

	e, err := recommend.NewEngine(cfg, pair, h.scorer, h.logger)
	if err != nil {
		return nil, false, err
	}
	h.engines.Add(key, e)
	metrics.RecordEngineCache(false, h.engines.Len())
	return e, false, nil
}
