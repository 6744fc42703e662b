// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for sources that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "grantscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for a lookup run.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Offset is the record offset of the first page (default 0).
	Offset int `json:"offset" yaml:"offset"`

	// PageSize is the number of records requested per page from paginated
	// sources (default 50).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxRecords caps the total records fetched from a paginated source.
	// Zero means fetch until the source is exhausted.
	MaxRecords int `json:"max_records" yaml:"max_records"`

	// EnableReporter controls whether the NIH RePORTER source is queried.
	EnableReporter bool `json:"enable_reporter" yaml:"enable_reporter"`

	// EnableNSF controls whether the NSF award search source is queried.
	EnableNSF bool `json:"enable_nsf" yaml:"enable_nsf"`
}
