// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/models"
	"github.com/tomtom215/cinerec/internal/render"
)

var (
	_ controller.View = (*Page)(nil)
	_ controller.View = (*Console)(nil)
)

func sampleTable() render.Table {
	return render.NewTable(models.ModeRatingPrediction, []models.ResultRow{
		{MovieID: models.NumberValue(7), MovieTitle: "X", Result: models.NumberValue(4.2)},
	})
}

func TestPage_ResultsAreExclusive(t *testing.T) {
	t.Parallel()

	p := NewPage()
	p.SetBusy(true)
	p.ShowMeta("Movies similar to: Heat")
	p.ShowTable(sampleTable())

	s := p.State()
	if !s.Busy || s.Table == nil || s.Meta == "" || !s.HasResults() {
		t.Fatalf("unexpected state: %+v", s)
	}

	p.ShowError("An error occurred while fetching data.")
	s = p.State()
	if s.Table != nil || s.Message != "" || s.Error == "" {
		t.Errorf("ShowError must replace the results area: %+v", s)
	}

	p.ShowMessage("nothing found")
	s = p.State()
	if s.Error != "" || s.Message != "nothing found" {
		t.Errorf("ShowMessage must replace the results area: %+v", s)
	}
}

func TestPage_ClearEmptiesMetaAndResults(t *testing.T) {
	t.Parallel()

	p := NewPage()
	p.ShowMeta("meta")
	p.ShowTable(sampleTable())
	p.Alert("alert stays")
	p.Clear()

	s := p.State()
	if s.Meta != "" || s.HasResults() {
		t.Errorf("Clear left content behind: %+v", s)
	}
	if s.Alert != "alert stays" {
		t.Errorf("Alert = %q", s.Alert)
	}
}

func TestConsole_Output(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.SetBusy(true)
	c.SetBusy(true)
	if !c.Busy() {
		t.Error("Busy() should be true")
	}
	c.ShowMeta("Movies similar to: Heat")
	c.ShowTable(sampleTable())
	c.SetBusy(false)

	if strings.Count(errOut.String(), "Fetching recommendations") != 1 {
		t.Errorf("progress line should print once: %q", errOut.String())
	}
	if !strings.HasPrefix(out.String(), "Movies similar to: Heat\n\n") {
		t.Errorf("meta should precede the table: %q", out.String())
	}
	if !strings.Contains(out.String(), "Forecasted rating") || !strings.Contains(out.String(), "4.2") {
		t.Errorf("table missing from output: %q", out.String())
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v", c.Err())
	}
}

func TestConsole_ErrorsGoToErrOut(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)
	c.Alert("Recommendations and Input must be positive integers.")
	c.ShowError("An error occurred while fetching data.")

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "positive integers") || !strings.Contains(errOut.String(), "fetching data") {
		t.Errorf("errOut = %q", errOut.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestConsole_RecordsFirstWriteError(t *testing.T) {
	t.Parallel()

	c := NewConsole(failingWriter{}, failingWriter{})
	c.ShowMessage("hello")
	c.ShowTable(sampleTable())
	if c.Err() == nil || !strings.Contains(c.Err().Error(), "closed pipe") {
		t.Errorf("Err() = %v", c.Err())
	}
}
