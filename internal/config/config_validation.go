// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied when no configuration source provides one.
const (
	defaultHTTPAddress    = ":8080"
	defaultDSN            = "grindtime.db"
	defaultTokenIssuer    = "grindtime"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultSearchTimeout  = 15 * time.Second
)

// applyDefaults fills zero-valued fields of the merged configuration with
// sane defaults. Called by the builder after merging all sources and before
// validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = defaultSearchTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if !cfg.Auth.DisableTokens && cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
