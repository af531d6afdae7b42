// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/ratingcf/internal/batch"
	"github.com/tomtom215/ratingcf/internal/config"
	"github.com/tomtom215/ratingcf/internal/logging"
	"github.com/tomtom215/ratingcf/internal/recommend/algorithms"
)

// runBatch answers one batch. Nothing is written to stdout unless every
// query succeeds.
func runBatch(cfg *config.Config, stdin io.Reader, stdout io.Writer) int {
	logger := logging.WithComponent("main")

	engineCfg, err := cfg.RecommendConfig()
	if err != nil {
		logger.Error().Err(err).Msg("invalid engine configuration")
		return exitUsage
	}

	in := stdin
	if cfg.Input.Path != "" {
		f, err := os.Open(cfg.Input.Path)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.Input.Path).Msg("cannot open input")
			return exitFailed
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithBatchID(ctx, logging.GenerateBatchID())

	runner := batch.NewRunner(cfg.BatchOptions(), engineCfg, algorithms.NewKNN(), logging.FromContext(ctx, logging.Logger()))
	if err := runner.Run(ctx, in, stdout); err != nil {
		logger.Debug().Err(err).Msg("exiting with failure")
		return exitFailed
	}
	return exitOK
}
