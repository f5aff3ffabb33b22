// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/render"
)

// ErrorMessage is the only failure text ever shown to the user.
const ErrorMessage = "An error occurred while fetching data."

// Outcome is how a submission ended.
type Outcome int

const (
	// OutcomeInvalid: the form was rejected locally and nothing was sent.
	OutcomeInvalid Outcome = iota + 1
	// OutcomeMessage: the upstream answered 200 with a non-empty message.
	OutcomeMessage
	// OutcomeSuccess: a results table was rendered.
	OutcomeSuccess
	// OutcomeFailed: a transport failure or panic; the generic error was shown.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeMessage:
		return "message"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrPanic wraps a value recovered from a panic during a submission.
var ErrPanic = errors.New("panic during submission")

// Controller drives the submit cycle of one recommendation form.
type Controller struct {
	recommender Recommender
	view        View
}

// New binds a controller to a recommender and a view.
func New(recommender Recommender, view View) *Controller {
	return &Controller{recommender: recommender, view: view}
}

// HandleSubmit suppresses the event's default action, then runs Submit with
// the event's current values.
func (c *Controller) HandleSubmit(ctx context.Context, event SubmitEvent) Outcome {
	event.PreventDefault()
	return c.Submit(ctx, event.Values())
}

// Submit runs one full cycle for values and returns how it ended.
func (c *Controller) Submit(ctx context.Context, values query.FormValues) (outcome Outcome) {
	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	start := time.Now()
	var req *query.Request

	defer func() {
		if r := recover(); r != nil {
			outcome = c.fail(ctx, fmt.Errorf("%w: %v", ErrPanic, r))
		}
		mode := ""
		if req != nil {
			mode = req.Mode.String()
		}
		metrics.RecordSubmission(outcome.String(), mode, time.Since(start))
	}()

	c.view.SetBusy(true)
	c.view.Clear()

	in, err := query.ParseForm(values)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Submission rejected")
		c.view.Alert(query.AlertMessage)
		c.view.SetBusy(false)
		return OutcomeInvalid
	}

	req = query.Build(in)
	log := logging.Ctx(ctx).With().
		Str("algorithm", req.Algorithm).
		Str("similarity", req.Similarity).
		Int("input", req.Input).
		Str("mode", req.Mode.String()).
		Logger()
	log.Debug().Str("query", req.Encode()).Msg("Requesting recommendations")

	resp, err := c.recommender.Recommend(ctx, req)
	if err != nil {
		return c.fail(ctx, err)
	}
	if resp == nil {
		return c.fail(ctx, errors.New("recommender returned no response"))
	}

	c.view.SetBusy(false)

	if resp.HasMessage() {
		log.Info().Str("upstream_message", resp.Message).Msg("Upstream returned a message")
		c.view.ShowMessage(resp.Message)
		return OutcomeMessage
	}

	if resp.DataType != "" && resp.DataType != req.Mode.ExpectedDataType() {
		log.Debug().Str("data_type", resp.DataType).Msg("Response dataType disagrees with display mode")
	}

	if req.Mode.ShowsMeta() {
		if line := render.MetaLine(resp.MetaInfo); line != "" {
			c.view.ShowMeta(line)
		}
	}

	table := render.NewTable(req.Mode, resp.Data)
	c.view.ShowTable(table)
	metrics.RecordRenderedRows(table.Len())

	log.Debug().Int("rows", table.Len()).Msg("Rendered recommendations")
	return OutcomeSuccess
}

// fail is the single failure path: idle first, then anything a partial
// render left behind is cleared before the generic text is shown.
func (c *Controller) fail(ctx context.Context, err error) Outcome {
	c.view.SetBusy(false)
	c.view.Clear()
	c.view.ShowError(ErrorMessage)
	logging.CtxErr(ctx, err).Msg("Recommendation request failed")
	return OutcomeFailed
}
