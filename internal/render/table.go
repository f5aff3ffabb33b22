// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package render

import (
	"github.com/tomtom215/cinerec/internal/models"
)

// Column headers shared by both modes.
const (
	HeaderMovieID    = "Movie ID"
	HeaderMovieTitle = "Movie Title"
)

// TableClass is the CSS class put on rendered result tables.
const TableClass = "table"

// metaPrefix precedes the subject movie description in similarity mode.
const metaPrefix = "Movies similar to: "

// Table is a results table of exactly three text columns.
type Table struct {
	Mode    models.Mode
	Headers [3]string
	Rows    [][3]string
}

// NewTable builds the table for rows in received order.
func NewTable(mode models.Mode, rows []models.ResultRow) Table {
	t := Table{
		Mode:    mode,
		Headers: [3]string{HeaderMovieID, HeaderMovieTitle, mode.ResultHeader()},
		Rows:    make([][3]string, 0, len(rows)),
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, [3]string{row.MovieID.String(), row.MovieTitle, row.Result.String()})
	}
	return t
}

// Len returns the number of body rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// MetaLine formats the subject description shown above similarity results.
// It returns "" when the upstream sent no description.
func MetaLine(metaInfo string) string {
	if metaInfo == "" {
		return ""
	}
	return metaPrefix + metaInfo
}
