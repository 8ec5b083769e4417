package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that token issuance is enabled but no
	// signing key was provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required unless tokens are disabled")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a negative token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
