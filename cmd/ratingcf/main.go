// Ratingcf - Collaborative Filtering Rating Predictor
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ratingcf

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/ratingcf/internal/config"
	"github.com/tomtom215/ratingcf/internal/logging"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

const usage = `usage: ratingcf [batch [FILE] | serve]

  batch   read a batch from FILE, INPUT_PATH or stdin and print one
          prediction per query to stdout (default)
  serve   run the HTTP API
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	mode := "batch"
	if len(args) > 0 {
		mode, args = args[0], args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ratingcf: %v\n", err)
		return exitUsage
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	switch mode {
	case "batch":
		if len(args) > 1 {
			fmt.Fprint(stderr, usage)
			return exitUsage
		}
		if len(args) == 1 {
			cfg.Input.Path = args[0]
		}
		return runBatch(cfg, stdin, stdout)
	case "serve":
		if len(args) > 0 {
			fmt.Fprint(stderr, usage)
			return exitUsage
		}
		return runServe(cfg)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "ratingcf: unknown mode %q\n\n%s", mode, usage)
		return exitUsage
	}
}
