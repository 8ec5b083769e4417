package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two causes are deliberately indistinguishable to callers so that
	// signin responses cannot be used to enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid covers every token validation failure:
	// malformed token, bad signature, wrong issuer, expiry, missing subject.
	// The specific cause is logged internally and never returned.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokensDisabled is returned when token operations are requested in a
	// deployment profile that runs with token issuance switched off.
	ErrTokensDisabled = errors.New("token issuance is disabled")

	// ErrTableNotAllowed is returned when a generic record operation targets
	// a table that is not a fitness record table (e.g. users).
	ErrTableNotAllowed = errors.New("table is not available for records")
)
