// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package models

// Mode selects how a recommendation result is presented.
type Mode int

const (
	// ModeRatingPrediction: the subject is a user and each row carries a
	// forecasted rating. No meta line is shown.
	ModeRatingPrediction Mode = iota + 1

	// ModeSimilarityLookup: the subject is a movie and each row carries a
	// similarity score. The response metaInfo describes the subject movie.
	ModeSimilarityLookup
)

// Algorithms whose input is a user id.
const (
	AlgorithmUser = "user"
	AlgorithmItem = "item"
)

// Legacy dataType hints sent by the upstream. Display never depends on them.
const (
	DataTypeRatings      = "ratings"
	DataTypeSimilarities = "similarities"
)

// ModeForAlgorithm maps an algorithm name to its display mode.
// Only "user" and "item" predict ratings; every other value, including
// unknown ones, is a similarity lookup.
func ModeForAlgorithm(algorithm string) Mode {
	switch algorithm {
	case AlgorithmUser, AlgorithmItem:
		return ModeRatingPrediction
	default:
		return ModeSimilarityLookup
	}
}

// ShowsMeta reports whether results in this mode come with a meta line.
func (m Mode) ShowsMeta() bool {
	return m == ModeSimilarityLookup
}

// ResultHeader is the header of the third table column.
func (m Mode) ResultHeader() string {
	if m == ModeRatingPrediction {
		return "Forecasted rating"
	}
	return "Similarity"
}

// ExpectedDataType is the dataType hint consistent with this mode.
func (m Mode) ExpectedDataType() string {
	if m == ModeRatingPrediction {
		return DataTypeRatings
	}
	return DataTypeSimilarities
}

// String returns the mode name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeRatingPrediction:
		return "rating"
	case ModeSimilarityLookup:
		return "similarity"
	default:
		return "unknown"
	}
}
