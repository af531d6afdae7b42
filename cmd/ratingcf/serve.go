// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/ratingcf/internal/api"
	"github.com/tomtom215/ratingcf/internal/config"
	"github.com/tomtom215/ratingcf/internal/logging"
	"github.com/tomtom215/ratingcf/internal/recommend/algorithms"
	"github.com/tomtom215/ratingcf/internal/supervisor"
	"github.com/tomtom215/ratingcf/internal/supervisor/services"
)

// runServe runs the HTTP API under the supervisor tree until SIGINT or
// SIGTERM.
func runServe(cfg *config.Config) int {
	logger := logging.WithComponent("main")

	if cfg.ShouldWarnAboutCORS() {
		logger.Warn().Msg("CORS allows any origin; set CORS_ORIGINS to restrict it")
	}

	handler, err := api.NewHandler(cfg, algorithms.NewKNN(), logging.Logger())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create API handler")
		return exitUsage
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.MiddlewareConfigFrom(cfg.Security)), cfg.Server.MaxBodyBytes)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create supervisor tree")
		return exitFailed
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", server.Addr).
		Str("no_neighbor_policy", cfg.Engine.NoNeighborPolicy).
		Int("workers", cfg.Engine.Workers).
		Bool("engine_cache", cfg.Cache.Enabled).
		Msg("starting ratingcf API")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("supervisor tree stopped")
		return exitFailed
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("service failed to stop in time")
		}
	}

	logger.Info().Msg("stopped")
	return exitOK
}
