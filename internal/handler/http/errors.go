package http

import "errors"

// Sentinel errors produced while extracting the bearer token from the
// Authorization header. They are logged internally; the HTTP response is
// always a plain 401 regardless of which one occurred.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptyToken                 = errors.New("empty token")
)
