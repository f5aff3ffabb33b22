// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package controller

import (
	"context"

	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/render"
)

// View is everything the controller may do to the page.
//
// ShowError, ShowMessage and ShowTable each replace the whole results area.
// Clear empties both the meta line and the results area.
type View interface {
	SetBusy(busy bool)
	Clear()
	Alert(msg string)
	ShowError(msg string)
	ShowMessage(msg string)
	ShowTable(t render.Table)
	ShowMeta(text string)
}

// Recommender answers one recommendation request.
type Recommender interface {
	Recommend(ctx context.Context, req *query.Request) (*models.RecommendResponse, error)
}

// SubmitEvent is a form submission as delivered by the host.
type SubmitEvent interface {
	// PreventDefault stops the host's own handling, such as page navigation.
	PreventDefault()

	// Values reads the current form field text.
	Values() query.FormValues
}

// ValuesEvent adapts plain form values to a SubmitEvent with nothing to prevent.
type ValuesEvent query.FormValues

// PreventDefault does nothing.
func (ValuesEvent) PreventDefault() {}

// Values returns the wrapped values.
func (e ValuesEvent) Values() query.FormValues {
	return query.FormValues(e)
}
