// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package view

import (
	"github.com/tomtom215/cinerec/internal/render"
)

// PageState is what the page template needs to draw the result of a submission.
// At most one of Error, Message and Table is set.
type PageState struct {
	Busy    bool
	Alert   string
	Meta    string
	Error   string
	Message string
	Table   *render.Table
}

// HasResults reports whether the results area has content.
func (s PageState) HasResults() bool {
	return s.Error != "" || s.Message != "" || s.Table != nil
}

// Page records view calls for one server-side submission. It is not safe for
// concurrent use; each request gets its own Page.
type Page struct {
	state PageState
}

// NewPage returns an idle, empty page.
func NewPage() *Page {
	return &Page{}
}

// State returns a copy of the recorded state.
func (p *Page) State() PageState {
	return p.state
}

func (p *Page) SetBusy(busy bool) {
	p.state.Busy = busy
}

func (p *Page) Clear() {
	p.state.Meta = ""
	p.clearResults()
}

// Alert is rendered as a dismissible notice above the form.
func (p *Page) Alert(msg string) {
	p.state.Alert = msg
}

func (p *Page) ShowError(msg string) {
	p.clearResults()
	p.state.Error = msg
}

func (p *Page) ShowMessage(msg string) {
	p.clearResults()
	p.state.Message = msg
}

func (p *Page) ShowTable(t render.Table) {
	p.clearResults()
	p.state.Table = &t
}

func (p *Page) ShowMeta(text string) {
	p.state.Meta = text
}

func (p *Page) clearResults() {
	p.state.Error = ""
	p.state.Message = ""
	p.state.Table = nil
}
