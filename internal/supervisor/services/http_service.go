// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Readiness is told when the server starts and stops taking requests.
// The API handler implements it for its readiness probe.
type Readiness interface {
	SetReady(ready bool)
}

// HTTPServerService runs an HTTP server as a suture.Service.
//
// Serve blocks in ListenAndServe until ctx is canceled, then marks the
// server not ready and shuts it down gracefully within shutdownTimeout.
type HTTPServerService struct {
	server          HTTPServer
	ready           Readiness
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService wraps server. ready may be nil.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, ready Readiness) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		ready:           ready,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

func (h *HTTPServerService) setReady(v bool) {
	if h.ready != nil {
		h.ready.SetReady(v)
	}
}

// Serve implements suture.Service. It returns ctx.Err() after a graceful
// shutdown and an error if the server fails on its own, which makes suture
// restart it.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.setReady(true)

	select {
	case err := <-errCh:
		h.setReady(false)
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.setReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

// String names the service in supervisor logs.
func (h *HTTPServerService) String() string {
	return h.name
}
