// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package query

import (
	"strconv"
	"strings"

	"github.com/tomtom215/cinerec/internal/models"
)

// RecommendPath is the endpoint every request targets.
const RecommendPath = "/recommend"

// Request is one /recommend call derived from a FormInput.
type Request struct {
	Similarity      string
	Algorithm       string
	Recommendations int
	Input           int
	MaxRecords      *int

	// Mode is fixed when the request is built and drives rendering.
	Mode models.Mode
}

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Build derives the request for a validated submission.
func Build(in *FormInput) *Request {
	req := &Request{
		Similarity:      in.Similarity,
		Algorithm:       in.Algorithm,
		Recommendations: in.Recommendations,
		Input:           in.Input,
		Mode:            models.ModeForAlgorithm(in.Algorithm),
	}
	if in.MaxRecords != nil {
		m := *in.MaxRecords
		req.MaxRecords = &m
	}
	return req
}

// Params returns the query parameters in wire order. maxRecords is present
// only when set.
func (r *Request) Params() []Param {
	params := make([]Param, 0, 5)
	params = append(params,
		Param{Key: FieldSimilarity, Value: r.Similarity},
		Param{Key: FieldAlgorithm, Value: r.Algorithm},
		Param{Key: FieldRecommendations, Value: strconv.Itoa(r.Recommendations)},
		Param{Key: FieldInput, Value: strconv.Itoa(r.Input)},
	)
	if r.MaxRecords != nil {
		params = append(params, Param{Key: FieldMaxRecords, Value: strconv.Itoa(*r.MaxRecords)})
	}
	return params
}

// Encode serializes the parameters as key=value pairs joined by "&".
func (r *Request) Encode() string {
	var sb strings.Builder
	for i, p := range r.Params() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(EscapeComponent(p.Key))
		sb.WriteByte('=')
		sb.WriteString(EscapeComponent(p.Value))
	}
	return sb.String()
}

// Path returns the request path with its query string, relative to the upstream base.
func (r *Request) Path() string {
	return RecommendPath + "?" + r.Encode()
}

// FormValues converts the request back into form field text, used to refill
// the form after a server-side submission.
func (r *Request) FormValues() FormValues {
	values := FormValues{}
	for _, p := range r.Params() {
		values[p.Key] = p.Value
	}
	return values
}
