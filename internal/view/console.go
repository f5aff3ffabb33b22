// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package view

import (
	"fmt"
	"io"

	"github.com/tomtom215/cinerec/internal/render"
)

// Console prints submission results to a terminal. Results go to out;
// progress, alerts and errors go to errOut so out stays pipeable.
type Console struct {
	out    io.Writer
	errOut io.Writer
	busy   bool
	err    error
}

// NewConsole creates a console view.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Busy reports whether a request is in flight.
func (c *Console) Busy() bool {
	return c.busy
}

// Err returns the first write error, if any.
func (c *Console) Err() error {
	return c.err
}

func (c *Console) SetBusy(busy bool) {
	if busy && !c.busy {
		c.printf(c.errOut, "Fetching recommendations...\n")
	}
	c.busy = busy
}

// Clear does nothing; terminal output is append-only.
func (c *Console) Clear() {}

func (c *Console) Alert(msg string) {
	c.printf(c.errOut, "%s\n", msg)
}

func (c *Console) ShowError(msg string) {
	c.printf(c.errOut, "%s\n", msg)
}

func (c *Console) ShowMessage(msg string) {
	c.printf(c.out, "%s\n", msg)
}

func (c *Console) ShowMeta(text string) {
	c.printf(c.out, "%s\n\n", text)
}

func (c *Console) ShowTable(t render.Table) {
	if err := render.WriteText(c.out, t); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Console) printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil && c.err == nil {
		c.err = err
	}
}
