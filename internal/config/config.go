// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// grindtime backend. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token and password-hashing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Search holds credentials and endpoints for the third-party nutrition
	// and video search APIs proxied by the backend.
	Search Search `envPrefix:"SEARCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds authentication-related configuration values that control
// password hashing and the token lifecycle.
type Auth struct {
	// TokenSignKey is the symmetric secret used to sign and verify JWT
	// tokens with HMAC-SHA256. Loaded once at startup; rotation requires a
	// process restart. Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "168h" for the default seven days).
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DisableTokens turns off token issuance on signin. The signin response
	// then carries only the user identity; all token-protected routes become
	// unusable. Intended for deployments that do their own session handling.
	// Env: AUTH_DISABLE_TOKENS
	DisableTokens bool `env:"DISABLE_TOKENS"`

	// BcryptCost overrides the bcrypt cost factor used when hashing
	// passwords. Zero means bcrypt.DefaultCost.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" prefix selects
	// the PostgreSQL driver; anything else is treated as a SQLite file path
	// (e.g. "grindtime.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Search holds configuration for the third-party search API adapters.
// Empty API keys disable the corresponding proxy endpoints.
type Search struct {
	// USDAAPIKey authenticates requests against the USDA FoodData Central
	// food search API.
	// Env: SEARCH_USDA_API_KEY
	USDAAPIKey string `env:"USDA_API_KEY"`

	// USDABaseURL overrides the FoodData Central base URL, mainly for tests.
	// Env: SEARCH_USDA_BASE_URL
	USDABaseURL string `env:"USDA_BASE_URL"`

	// YouTubeAPIKey authenticates requests against the YouTube Data API.
	// Env: SEARCH_YOUTUBE_API_KEY
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// YouTubeBaseURL overrides the YouTube Data API base URL, mainly for tests.
	// Env: SEARCH_YOUTUBE_BASE_URL
	YouTubeBaseURL string `env:"YOUTUBE_BASE_URL"`

	// Timeout bounds a single outbound search request.
	// Env: SEARCH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for any field it sets to a non-zero value):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
