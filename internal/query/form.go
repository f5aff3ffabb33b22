// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/cinerec/internal/validation"
)

// Form field ids. They double as query parameter names and page element ids.
const (
	FieldRecommendations = "recommendations"
	FieldSimilarity      = "similarity"
	FieldAlgorithm       = "algorithm"
	FieldInput           = "input"
	FieldMaxRecords      = "maxRecords"
)

// FieldNames lists the form fields in query parameter order.
var FieldNames = []string{FieldSimilarity, FieldAlgorithm, FieldRecommendations, FieldInput, FieldMaxRecords}

// AlertMessage is shown to the user when recommendations or input is not a positive integer.
const AlertMessage = "Recommendations and Input must be positive integers."

// ErrInvalidForm is the sentinel wrapped by every ValidationError.
var ErrInvalidForm = errors.New("invalid form input")

// FormValues holds the raw text of each form field, keyed by field id.
// A missing key reads as an empty field.
type FormValues map[string]string

// Get returns the raw text of a field.
func (v FormValues) Get(field string) string {
	return v[field]
}

// FormValuesFromURL takes the first value of every known field.
func FormValuesFromURL(values url.Values) FormValues {
	out := make(FormValues, len(FieldNames))
	for _, field := range FieldNames {
		if vs, ok := values[field]; ok && len(vs) > 0 {
			out[field] = vs[0]
		}
	}
	return out
}

// FormInput is the validated content of one submission.
type FormInput struct {
	Recommendations int    `form:"recommendations" validate:"gt=0"`
	Similarity      string `form:"similarity"`
	Algorithm       string `form:"algorithm"`
	Input           int    `form:"input" validate:"gt=0"`

	// MaxRecords is nil unless the field held a positive integer.
	MaxRecords *int `form:"maxRecords" validate:"omitempty,gt=0"`
}

// ValidationError reports which required fields were rejected.
type ValidationError struct {
	// Fields names the rejected fields in form order.
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidForm, e.err)
}

// Unwrap returns both the sentinel and the underlying parse or validation error.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidForm, e.err}
}

// ParseForm validates a submission.
//
// recommendations and input must start with an integer greater than zero
// (see parseInt). maxRecords is soft: an empty, non-numeric or non-positive value
// is dropped without failing the submission. similarity and algorithm are
// passed through untouched.
func ParseForm(values FormValues) (*FormInput, error) {
	in := &FormInput{
		Similarity: values.Get(FieldSimilarity),
		Algorithm:  values.Get(FieldAlgorithm),
	}

	var parseErrs []error

	n, err := parseInt(values.Get(FieldRecommendations))
	if err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("%s: %w", FieldRecommendations, err))
	}
	in.Recommendations = n

	n, err = parseInt(values.Get(FieldInput))
	if err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("%s: %w", FieldInput, err))
	}
	in.Input = n

	if m, err := parseInt(values.Get(FieldMaxRecords)); err == nil && m > 0 {
		in.MaxRecords = &m
	}

	// Unparsable fields stay zero, so the gt=0 rule reports them too.
	if verr := validation.ValidateStruct(in); verr != nil {
		return nil, &ValidationError{
			Fields: verr.Fields(),
			err:    errors.Join(append(parseErrs, verr)...),
		}
	}

	return in, nil
}

// parseInt reads a leading integer the way a browser form does: surrounding
// whitespace and an optional sign are accepted, then the longest run of
// digits is used and anything after it is ignored ("4.5" is 4, "5abc" is 5,
// "1e3" is 1). A "0x" prefix switches to hexadecimal. A value with no
// digits is an error.
func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("value is empty")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("integer out of range: %q", raw)
	}
	if neg {
		n = -n
	}
	return int(n), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}
