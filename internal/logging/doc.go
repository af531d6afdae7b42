// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Package logging provides the process-wide zerolog logger.

Logs always go to stderr by default: in batch mode stdout carries the
prediction lines and nothing else.

Configuration comes from the config package:

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

Components take a child logger once and keep it:

	logger := logging.WithComponent("batch")
	logger.Info().Int("queries", n).Msg("batch complete")

Request and batch IDs travel in the context and are added by Ctx:

	ctx = logging.ContextWithBatchID(ctx, logging.GenerateBatchID())
	logging.Ctx(ctx).Debug().Msg("parsed input")

SlogHandler bridges slog-only libraries, such as the supervisor's event
hook, into the same output.
*/
package logging
