package adapter

import "errors"

var (
	// ErrSearchUnavailable is returned when an adapter has no API key
	// configured; the corresponding proxy endpoint is effectively disabled.
	ErrSearchUnavailable = errors.New("search adapter is not configured")

	// ErrUpstreamFailed is returned when the third-party API answers with a
	// non-success status.
	ErrUpstreamFailed = errors.New("upstream search request failed")
)
