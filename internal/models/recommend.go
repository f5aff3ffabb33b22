// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// RecommendResponse is the JSON body of a 200 response from GET /recommend.
//
// A non-empty Message is an application-level failure reported by the
// upstream ("movie not found", "no ratings for user") and replaces the table.
//
// Example rating response:
//
//	{
//	  "status": "success",
//	  "statusCode": 200,
//	  "dataType": "ratings",
//	  "message": "",
//	  "data": [{"movieID": 7, "movieTitle": "X", "result": 4.2}]
//	}
type RecommendResponse struct {
	Status     string      `json:"status,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
	Message    string      `json:"message"`
	MetaInfo   string      `json:"metaInfo,omitempty"`
	DataType   string      `json:"dataType,omitempty"`
	Data       []ResultRow `json:"data"`
}

// HasMessage reports whether the upstream answered with an application-level message.
func (r *RecommendResponse) HasMessage() bool {
	return r.Message != ""
}

// ResultRow is one recommended movie.
type ResultRow struct {
	MovieID    Value  `json:"movieID"`
	MovieTitle string `json:"movieTitle"`
	Result     Value  `json:"result"`
}

// Value holds a JSON string or number as display text.
// Numbers are formatted the way a browser's String(n) would, so 4.20 shows as
// "4.2" and 7.0 as "7". JSON null leaves the value empty.
type Value struct {
	text  string
	isNum bool
}

// StringValue returns a Value holding s verbatim.
func StringValue(s string) Value {
	return Value{text: s}
}

// NumberValue returns a Value holding the display text of f.
func NumberValue(f float64) Value {
	return Value{text: FormatNumber(f), isNum: true}
}

// String returns the display text.
func (v Value) String() string {
	return v.text
}

// IsNumber reports whether the value arrived as a JSON number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// UnmarshalJSON accepts a string, a number, a boolean or null.
// Objects and arrays are kept as their compact JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*v = Value{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*v = NumberValue(f)
		return nil
	case data[0] == '{' || data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = StringValue(buf.String())
		return nil
	default:
		*v = StringValue(string(data))
		return nil
	}
}

// MarshalJSON writes numbers back as numbers and everything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}

// FormatNumber renders f like JavaScript's Number.prototype.toString:
// the shortest round-tripping decimal, switching to exponent form below 1e-6
// and from 1e21 upwards.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go writes 1e-07; browsers write 1e-7.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
