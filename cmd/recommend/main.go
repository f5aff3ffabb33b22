// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Command recommend submits one recommendation query from the terminal and
// prints the results as a text table.
//
//	recommend -a item -s cosine -n 5 -i 42
//	recommend --algorithm title --input 1 --url http://recs.internal:8080
//
// The upstream URL defaults to UPSTREAM_URL (or upstream.url in config.yaml).
// Exit status is 0 when results or a message were printed, 2 when the input
// was rejected, and 1 when the upstream could not be reached.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/upstream"
	"github.com/tomtom215/cinerec/internal/view"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	recommendations string
	similarity      string
	algorithm       string
	input           string
	maxRecords      string
	url             string
	verbose         bool
}

func parseFlags(args []string, stderr io.Writer, defaultRecommendations int) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("recommend", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.recommendations, "recommendations", "n", strconv.Itoa(defaultRecommendations), "number of recommendations")
	fs.StringVarP(&opts.similarity, "similarity", "s", "cosine", "similarity measure")
	fs.StringVarP(&opts.algorithm, "algorithm", "a", "item", "recommendation algorithm")
	fs.StringVarP(&opts.input, "input", "i", "", "user or movie id")
	fs.StringVarP(&opts.maxRecords, "max-records", "r", "", "cap on records the upstream reads (optional)")
	fs.StringVarP(&opts.url, "url", "u", "", "upstream base URL (default from UPSTREAM_URL)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func (o *options) formValues() query.FormValues {
	return query.FormValues{
		query.FieldRecommendations: o.recommendations,
		query.FieldSimilarity:      o.similarity,
		query.FieldAlgorithm:       o.algorithm,
		query.FieldInput:           o.input,
		query.FieldMaxRecords:      o.maxRecords,
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return exitFailed
	}

	opts, err := parseFlags(args, stderr, cfg.UI.DefaultRecommendations)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return exitInvalid
	}

	logging.Init(logging.Config{Level: "warn", Format: "console", Output: stderr})
	if opts.verbose {
		logging.SetLevelString("debug")
	}

	if opts.url != "" {
		cfg.Upstream.URL = opts.url
	}
	client, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return exitFailed
	}

	console := view.NewConsole(stdout, stderr)
	outcome := controller.New(client, console).Submit(ctx, opts.formValues())
	logging.Debug().Str("outcome", outcome.String()).Msg("Submission finished")

	if err := console.Err(); err != nil {
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return exitFailed
	}

	switch outcome {
	case controller.OutcomeInvalid:
		return exitInvalid
	case controller.OutcomeFailed:
		return exitFailed
	default:
		return exitOK
	}
}
