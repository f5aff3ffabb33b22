// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// RecommendPath is the upstream endpoint that serves recommendations.
const RecommendPath = "/recommend"

// RecommendURL returns the absolute URL of the upstream /recommend endpoint.
// A path prefix in the base URL is kept: http://host/api becomes
// http://host/api/recommend.
func (u UpstreamConfig) RecommendURL() (*url.URL, error) {
	base, err := url.Parse(u.URL)
	if err != nil {
		return nil, fmt.Errorf("upstream url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("upstream url scheme must be http or https, got: %q", base.Scheme)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("upstream url host is required")
	}

	endpoint := *base
	endpoint.Path = strings.TrimRight(base.Path, "/") + RecommendPath
	endpoint.RawPath = ""
	endpoint.RawQuery = ""
	endpoint.Fragment = ""
	return &endpoint, nil
}
