// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/render"
	"github.com/tomtom215/cinerec/internal/upstream"
)

// recordingView logs every call in order.
type recordingView struct {
	calls     []string
	table     *render.Table
	panicOn   string
	panicOnce bool
}

func (v *recordingView) record(call string) {
	v.calls = append(v.calls, call)
	if v.panicOn != "" && strings.HasPrefix(call, v.panicOn) && !v.panicOnce {
		v.panicOnce = true
		panic("view exploded")
	}
}

func (v *recordingView) SetBusy(busy bool)      { v.record(fmt.Sprintf("SetBusy(%t)", busy)) }
func (v *recordingView) Clear()                 { v.record("Clear") }
func (v *recordingView) Alert(msg string)       { v.record("Alert:" + msg) }
func (v *recordingView) ShowError(msg string)   { v.record("ShowError:" + msg) }
func (v *recordingView) ShowMessage(msg string) { v.record("ShowMessage:" + msg) }
func (v *recordingView) ShowMeta(text string)   { v.record("ShowMeta:" + text) }
func (v *recordingView) ShowTable(t render.Table) {
	v.table = &t
	v.record(fmt.Sprintf("ShowTable:%d", t.Len()))
}

// fakeRecommender returns a canned response or error.
type fakeRecommender struct {
	resp    *models.RecommendResponse
	err     error
	panics  bool
	calls   int
	lastReq *query.Request
	lastCtx context.Context
}

func (f *fakeRecommender) Recommend(ctx context.Context, req *query.Request) (*models.RecommendResponse, error) {
	f.calls++
	f.lastReq = req
	f.lastCtx = ctx
	if f.panics {
		panic("recommender exploded")
	}
	return f.resp, f.err
}

// orderedEvent records PreventDefault into the view's call log.
type orderedEvent struct {
	view   *recordingView
	values query.FormValues
}

func (e orderedEvent) PreventDefault()          { e.view.calls = append(e.view.calls, "PreventDefault") }
func (e orderedEvent) Values() query.FormValues { return e.values }

func workedExampleValues() query.FormValues {
	return query.FormValues{
		query.FieldRecommendations: "5",
		query.FieldSimilarity:      "cosine",
		query.FieldAlgorithm:       "item",
		query.FieldInput:           "42",
	}
}

func ratingResponse() *models.RecommendResponse {
	return &models.RecommendResponse{
		Data: []models.ResultRow{{MovieID: models.NumberValue(7), MovieTitle: "X", Result: models.NumberValue(4.2)}},
	}
}

func TestHandleSubmit_WorkedExample(t *testing.T) {
	t.Parallel()

	view := &recordingView{}
	rec := &fakeRecommender{resp: ratingResponse()}
	c := New(rec, view)

	outcome := c.HandleSubmit(context.Background(), orderedEvent{view: view, values: workedExampleValues()})
	if outcome != OutcomeSuccess {
		t.Fatalf("outcome = %v, want success", outcome)
	}

	want := []string{"PreventDefault", "SetBusy(true)", "Clear", "SetBusy(false)", "ShowTable:1"}
	if !reflect.DeepEqual(view.calls, want) {
		t.Errorf("calls = %v, want %v", view.calls, want)
	}

	if got := rec.lastReq.Path(); got != "/recommend?similarity=cosine&algorithm=item&recommendations=5&input=42" {
		t.Errorf("request path = %q", got)
	}
	if view.table.Headers != [3]string{"Movie ID", "Movie Title", "Forecasted rating"} {
		t.Errorf("headers = %v", view.table.Headers)
	}
	if view.table.Rows[0] != [3]string{"7", "X", "4.2"} {
		t.Errorf("row = %v", view.table.Rows[0])
	}
}

func TestSubmit_InvalidInputMakesNoCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		recs  string
		input string
	}{
		{"zero recommendations", "0", "42"},
		{"negative input", "5", "-3"},
		{"non-numeric", "many", "42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := workedExampleValues()
			values[query.FieldRecommendations] = tt.recs
			values[query.FieldInput] = tt.input

			view := &recordingView{}
			rec := &fakeRecommender{resp: ratingResponse()}
			outcome := New(rec, view).HandleSubmit(context.Background(), orderedEvent{view: view, values: values})

			if outcome != OutcomeInvalid {
				t.Errorf("outcome = %v, want invalid", outcome)
			}
			if rec.calls != 0 {
				t.Errorf("recommender called %d times, want 0", rec.calls)
			}
			want := []string{"PreventDefault", "SetBusy(true)", "Clear", "Alert:" + query.AlertMessage, "SetBusy(false)"}
			if !reflect.DeepEqual(view.calls, want) {
				t.Errorf("calls = %v, want %v", view.calls, want)
			}
		})
	}
}

func TestSubmit_SimilarityModeShowsMeta(t *testing.T) {
	t.Parallel()

	values := workedExampleValues()
	values[query.FieldAlgorithm] = "tag"

	view := &recordingView{}
	rec := &fakeRecommender{resp: &models.RecommendResponse{
		MetaInfo: "Toy Story (1995)",
		DataType: models.DataTypeSimilarities,
		Data: []models.ResultRow{
			{MovieID: models.NumberValue(2), MovieTitle: "A", Result: models.NumberValue(0.9)},
			{MovieID: models.NumberValue(1), MovieTitle: "B", Result: models.NumberValue(0.8)},
		},
	}}

	if outcome := New(rec, view).Submit(context.Background(), values); outcome != OutcomeSuccess {
		t.Fatalf("outcome = %v, want success", outcome)
	}

	want := []string{"SetBusy(true)", "Clear", "SetBusy(false)", "ShowMeta:Movies similar to: Toy Story (1995)", "ShowTable:2"}
	if !reflect.DeepEqual(view.calls, want) {
		t.Errorf("calls = %v, want %v", view.calls, want)
	}
	if view.table.Headers[2] != "Similarity" {
		t.Errorf("third header = %q", view.table.Headers[2])
	}
	if view.table.Rows[0][1] != "A" || view.table.Rows[1][1] != "B" {
		t.Errorf("rows reordered: %v", view.table.Rows)
	}
}

func TestSubmit_RatingModeIgnoresMetaInfo(t *testing.T) {
	t.Parallel()

	resp := ratingResponse()
	resp.MetaInfo = "should not show"

	view := &recordingView{}
	New(&fakeRecommender{resp: resp}, view).Submit(context.Background(), workedExampleValues())

	for _, call := range view.calls {
		if strings.HasPrefix(call, "ShowMeta") {
			t.Errorf("rating mode rendered meta: %v", view.calls)
		}
	}
}

func TestSubmit_MessageReplacesTable(t *testing.T) {
	t.Parallel()

	values := workedExampleValues()
	values[query.FieldAlgorithm] = "title"

	view := &recordingView{}
	rec := &fakeRecommender{resp: &models.RecommendResponse{
		Message:  "No relevant movies found for user 42. Try using another algorithm.",
		MetaInfo: "ignored",
		Data:     ratingResponse().Data,
	}}

	if outcome := New(rec, view).Submit(context.Background(), values); outcome != OutcomeMessage {
		t.Fatalf("outcome = %v, want message", outcome)
	}

	want := []string{"SetBusy(true)", "Clear", "SetBusy(false)", "ShowMessage:No relevant movies found for user 42. Try using another algorithm."}
	if !reflect.DeepEqual(view.calls, want) {
		t.Errorf("calls = %v, want %v", view.calls, want)
	}
	if view.table != nil {
		t.Error("message response must not render a table")
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  *fakeRecommender
	}{
		{"status error", &fakeRecommender{err: &upstream.TransportError{Kind: upstream.KindStatus, StatusCode: 500, Err: upstream.ErrUnexpectedStatus}}},
		{"network error", &fakeRecommender{err: errors.New("connection refused")}},
		{"nil response", &fakeRecommender{}},
		{"recommender panics", &fakeRecommender{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := &recordingView{}
			outcome := New(tt.rec, view).Submit(context.Background(), workedExampleValues())
			if outcome != OutcomeFailed {
				t.Fatalf("outcome = %v, want failed", outcome)
			}

			want := []string{"SetBusy(true)", "Clear", "SetBusy(false)", "Clear", "ShowError:" + ErrorMessage}
			if !reflect.DeepEqual(view.calls, want) {
				t.Errorf("calls = %v, want %v", view.calls, want)
			}
		})
	}
}

func TestSubmit_RenderPanicEndsIdleWithError(t *testing.T) {
	t.Parallel()

	view := &recordingView{panicOn: "ShowTable"}
	outcome := New(&fakeRecommender{resp: ratingResponse()}, view).Submit(context.Background(), workedExampleValues())
	if outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", outcome)
	}

	n := len(view.calls)
	if n < 3 || view.calls[n-3] != "SetBusy(false)" || view.calls[n-2] != "Clear" || view.calls[n-1] != "ShowError:"+ErrorMessage {
		t.Errorf("cycle must end idle with the generic error: %v", view.calls)
	}
}

func TestSubmit_RenderPanicClearsMeta(t *testing.T) {
	t.Parallel()

	view := &recordingView{panicOn: "ShowTable"}
	resp := &models.RecommendResponse{
		MetaInfo: "Heat (1995)",
		Data:     []models.ResultRow{{MovieID: models.StringValue("9"), MovieTitle: "Ronin", Result: models.NumberValue(0.81)}},
	}
	values := workedExampleValues()
	values[query.FieldAlgorithm] = "title"

	outcome := New(&fakeRecommender{resp: resp}, view).Submit(context.Background(), values)
	if outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", outcome)
	}

	metaAt, clearAt := -1, -1
	for i, call := range view.calls {
		switch {
		case strings.HasPrefix(call, "ShowMeta:"):
			metaAt = i
		case call == "Clear":
			clearAt = i
		}
	}
	if metaAt < 0 {
		t.Fatalf("meta line was never shown: %v", view.calls)
	}
	if clearAt < metaAt {
		t.Errorf("meta line must be cleared before the error is shown: %v", view.calls)
	}
	if last := view.calls[len(view.calls)-1]; last != "ShowError:"+ErrorMessage {
		t.Errorf("last call = %q, want the generic error", last)
	}
}

func TestSubmit_EveryBranchEndsIdle(t *testing.T) {
	t.Parallel()

	recs := []*fakeRecommender{
		{resp: ratingResponse()},
		{resp: &models.RecommendResponse{Message: "nope"}},
		{err: errors.New("down")},
	}
	for i, rec := range recs {
		view := &recordingView{}
		New(rec, view).Submit(context.Background(), workedExampleValues())

		busy := false
		for _, call := range view.calls {
			switch call {
			case "SetBusy(true)":
				busy = true
			case "SetBusy(false)":
				busy = false
			}
		}
		if busy {
			t.Errorf("case %d left the view busy: %v", i, view.calls)
		}
	}
}

func TestSubmit_AddsCorrelationID(t *testing.T) {
	t.Parallel()

	rec := &fakeRecommender{resp: ratingResponse()}
	New(rec, &recordingView{}).Submit(context.Background(), workedExampleValues())

	if rec.lastCtx == nil {
		t.Fatal("recommender not called")
	}
	if logging.CorrelationIDFromContext(rec.lastCtx) == "" {
		t.Error("submission context should carry a correlation id")
	}

	ctx := logging.ContextWithCorrelationID(context.Background(), "fixed123")
	New(rec, &recordingView{}).Submit(ctx, workedExampleValues())
	if got := logging.CorrelationIDFromContext(rec.lastCtx); got != "fixed123" {
		t.Errorf("existing correlation id replaced: %q", got)
	}
}

func TestSubmit_EndToEndWithUpstreamClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","statusCode":200,"dataType":"ratings","message":"","data":[{"movieID":7,"movieTitle":"X","result":4.2}]}`))
	}))
	defer server.Close()

	view := &recordingView{}
	client := upstream.NewClientWithHTTP(server.URL, server.Client())
	if outcome := New(client, view).Submit(context.Background(), workedExampleValues()); outcome != OutcomeSuccess {
		t.Fatalf("outcome = %v, calls = %v", outcome, view.calls)
	}
	if view.table.Rows[0] != [3]string{"7", "X", "4.2"} {
		t.Errorf("row = %v", view.table.Rows[0])
	}
}

func TestSubmit_EndToEndNon200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	view := &recordingView{}
	client := upstream.NewClientWithHTTP(server.URL, server.Client())
	if outcome := New(client, view).Submit(context.Background(), workedExampleValues()); outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want failed", outcome)
	}
	if view.table != nil {
		t.Error("no table fragment may be rendered on failure")
	}
}

func TestValuesEvent(t *testing.T) {
	t.Parallel()

	ev := ValuesEvent(workedExampleValues())
	ev.PreventDefault()
	if ev.Values().Get(query.FieldInput) != "42" {
		t.Error("ValuesEvent should return its values")
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	for o, want := range map[Outcome]string{
		OutcomeInvalid: "invalid",
		OutcomeMessage: "message",
		OutcomeSuccess: "success",
		OutcomeFailed:  "failed",
		Outcome(0):     "unknown",
	} {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, o.String(), want)
		}
	}
}
