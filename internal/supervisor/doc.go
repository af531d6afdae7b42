// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

/*
Package supervisor runs serve mode as a suture v4 supervisor tree.

	ratingcf (root)
	└── api-layer
	    └── http-server

Batch mode does not use the tree: it runs one batch and exits.

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog into a slog.Logger, which main backs with the zerolog adapter
from the logging package.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, handler))
	err = tree.Serve(ctx)
*/
package supervisor
