// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator with one custom tag,
// http_base_url, and reports failures as *RequestValidationError values whose
// field names follow the form, koanf or json tag of the field.
//
// Example usage:
//
//	type FormInput struct {
//	    Recommendations int `form:"recommendations" validate:"gt=0"`
//	    Input           int `form:"input" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&in); verr != nil {
//	    return verr
//	}
//
// The configuration loader and the form parser both validate through this
// package.
package validation
