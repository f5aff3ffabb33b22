// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes t as aligned columns with a dashed rule under the header.
// Tabs and newlines inside cells are replaced by spaces so one row stays one line.
func WriteText(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	writeRow(tw, t.Headers)
	var rule [3]string
	for i, h := range t.Headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	writeRow(tw, rule)
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func writeRow(w io.Writer, cells [3]string) {
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cellReplacer.Replace(cells[0]),
		cellReplacer.Replace(cells[1]),
		cellReplacer.Replace(cells[2]))
}
