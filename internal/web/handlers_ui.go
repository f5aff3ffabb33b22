// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strconv"

	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/render"
	"github.com/tomtom215/cinerec/internal/view"
)

//go:embed templates/page.html
var templateFS embed.FS

func parsePageTemplate() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse page template: %w", err)
	}
	return t, nil
}

// formFields is the text shown in each form control.
type formFields struct {
	Recommendations string
	Similarity      string
	Algorithm       string
	Input           string
	MaxRecords      string
}

func fieldsFromValues(v query.FormValues) formFields {
	return formFields{
		Recommendations: v.Get(query.FieldRecommendations),
		Similarity:      v.Get(query.FieldSimilarity),
		Algorithm:       v.Get(query.FieldAlgorithm),
		Input:           v.Get(query.FieldInput),
		MaxRecords:      v.Get(query.FieldMaxRecords),
	}
}

type pageData struct {
	Title        string
	Algorithms   []string
	Similarities []string
	Form         formFields
	State        view.PageState
	TableClass   string
	Wasm         bool
	WasmURL      string
	WasmExecURL  string
}

// Index renders the empty form with configured defaults.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	ui := s.cfg.UI
	form := formFields{Recommendations: strconv.Itoa(ui.DefaultRecommendations)}
	if len(ui.Algorithms) > 0 {
		form.Algorithm = ui.Algorithms[0]
	}
	if len(ui.Similarities) > 0 {
		form.Similarity = ui.Similarities[0]
	}
	s.renderPage(w, r, http.StatusOK, form, view.PageState{})
}

// Results runs one submission from the query string and renders the page
// with the outcome and the submitted values preserved.
func (s *Server) Results(w http.ResponseWriter, r *http.Request) {
	values := query.FormValuesFromURL(r.URL.Query())

	page := view.NewPage()
	outcome := controller.New(s.recommender, page).Submit(r.Context(), values)

	logging.Ctx(r.Context()).Debug().
		Str("outcome", outcome.String()).
		Str("algorithm", values.Get(query.FieldAlgorithm)).
		Msg("Server-side submission finished")

	s.renderPage(w, r, statusForOutcome(outcome), fieldsFromValues(values), page.State())
}

func statusForOutcome(o controller.Outcome) int {
	switch o {
	case controller.OutcomeInvalid:
		return http.StatusBadRequest
	case controller.OutcomeFailed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, form formFields, state view.PageState) {
	data := pageData{
		Title:        s.cfg.UI.Title,
		Algorithms:   withOption(s.cfg.UI.Algorithms, form.Algorithm),
		Similarities: withOption(s.cfg.UI.Similarities, form.Similarity),
		Form:         form,
		State:        state,
		TableClass:   render.TableClass,
		Wasm:         s.wasm,
		WasmURL:      staticPrefix + WasmFile,
		WasmExecURL:  staticPrefix + WasmExecFile,
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

// withOption returns options plus selected when a submitted value is not one
// of the configured choices, so the select still shows what was sent.
func withOption(options []string, selected string) []string {
	if selected == "" || slices.Contains(options, selected) {
		return options
	}
	out := make([]string, 0, len(options)+1)
	out = append(out, options...)
	return append(out, selected)
}
