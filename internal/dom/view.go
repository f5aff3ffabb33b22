// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

//go:build js && wasm

package dom

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/query"
	"github.com/tomtom215/cinerec/internal/render"
)

// Element ids of the form page.
const (
	IDForm             = "recommendationForm"
	IDSubmitButton     = "submitButton"
	IDLoadingIndicator = "loadingIndicator"
	IDMetaInfo         = "metaInfo"
	IDResults          = "recommendationResults"
)

// View drives the form page through syscall/js.
type View struct {
	window   js.Value
	document js.Value

	form     js.Value
	fields   map[string]js.Value
	submit   js.Value
	loading  js.Value
	metaInfo js.Value
	results  js.Value
}

// Bind resolves every element the controller touches. global is the JS global
// object (window in a browser).
func Bind(global js.Value) (*View, error) {
	doc := global.Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("dom: no document in global scope")
	}

	lookup := func(id string) (js.Value, error) {
		el := doc.Call("getElementById", id)
		if !el.Truthy() {
			return js.Undefined(), fmt.Errorf("dom: element #%s not found", id)
		}
		return el, nil
	}

	v := &View{
		window:   global,
		document: doc,
		fields:   make(map[string]js.Value, len(query.FieldNames)),
	}

	var err error
	for _, el := range []struct {
		id  string
		dst *js.Value
	}{
		{IDForm, &v.form},
		{IDSubmitButton, &v.submit},
		{IDLoadingIndicator, &v.loading},
		{IDMetaInfo, &v.metaInfo},
		{IDResults, &v.results},
	} {
		if *el.dst, err = lookup(el.id); err != nil {
			return nil, err
		}
	}
	for _, field := range query.FieldNames {
		if v.fields[field], err = lookup(field); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Values reads the current text of every form field.
func (v *View) Values() query.FormValues {
	out := make(query.FormValues, len(v.fields))
	for field, el := range v.fields {
		out[field] = el.Get("value").String()
	}
	return out
}

// OnSubmit installs the form's submit listener. The default action is
// prevented and the field values are read synchronously; the submission
// itself runs on its own goroutine because the upstream call blocks and
// must not hold the JS event loop. The returned func removes the listener.
func (v *View) OnSubmit(ctx context.Context, c *controller.Controller) (release func()) {
	handler := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		event := controller.ValuesEvent(v.Values())
		go func() {
			outcome := c.HandleSubmit(ctx, event)
			logging.Debug().Str("outcome", outcome.String()).Msg("Submission finished")
		}()
		return false
	})

	v.form.Call("addEventListener", "submit", handler)
	return func() {
		v.form.Call("removeEventListener", "submit", handler)
		handler.Release()
	}
}

func (v *View) SetBusy(busy bool) {
	if busy {
		v.loading.Get("style").Set("display", "block")
		v.submit.Call("setAttribute", "disabled", "disabled")
		return
	}
	v.loading.Get("style").Set("display", "none")
	v.submit.Call("removeAttribute", "disabled")
}

func (v *View) Clear() {
	v.metaInfo.Set("textContent", "")
	v.results.Set("textContent", "")
}

func (v *View) Alert(msg string) {
	v.window.Call("alert", msg)
}

func (v *View) ShowError(msg string) {
	v.results.Set("textContent", msg)
}

func (v *View) ShowMessage(msg string) {
	v.results.Set("textContent", msg)
}

func (v *View) ShowMeta(text string) {
	v.metaInfo.Set("textContent", text)
}

// ShowTable replaces the results area with a table of text cells.
func (v *View) ShowTable(t render.Table) {
	table := v.element("table")
	table.Get("classList").Call("add", render.TableClass)

	thead := v.element("thead")
	headRow := v.element("tr")
	for _, h := range t.Headers {
		th := v.text("th", h)
		th.Set("scope", "col")
		headRow.Call("appendChild", th)
	}
	thead.Call("appendChild", headRow)
	table.Call("appendChild", thead)

	tbody := v.element("tbody")
	for _, row := range t.Rows {
		tr := v.element("tr")
		for _, cell := range row {
			tr.Call("appendChild", v.text("td", cell))
		}
		tbody.Call("appendChild", tr)
	}
	table.Call("appendChild", tbody)

	v.results.Set("textContent", "")
	v.results.Call("appendChild", table)
}

func (v *View) element(tag string) js.Value {
	return v.document.Call("createElement", tag)
}

func (v *View) text(tag, content string) js.Value {
	el := v.element(tag)
	el.Set("textContent", content)
	return el
}
