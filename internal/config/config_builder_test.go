package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_AppliesDefaults verifies that a config providing only the sign key
// is filled out with every default value.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{TokenSignKey: "key"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "grindtime.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "grindtime", cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Search.Timeout)
}

// TestBuild_MergesMultipleConfigs verifies that non-zero fields from earlier
// sources win over later ones.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth:   Auth{TokenSignKey: "env-key"},
			Server: Server{HTTPAddress: ":9090"},
		},
		&StructuredConfig{
			Auth:    Auth{TokenSignKey: "flag-key", TokenIssuer: "from-flags"},
			Storage: Storage{DB: DB{DSN: "flags.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "from-flags", cfg.Auth.TokenIssuer)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_RequiresSignKey(t *testing.T) {
	b := newConfigBuilder()

	_, err := b.build()
	require.ErrorIs(t, err, ErrMissingTokenSignKey)
}

// TestValidate_TokensDisabledNeedsNoKey verifies the session-less profile:
// with tokens off, no sign key is required.
func TestValidate_TokensDisabledNeedsNoKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{DisableTokens: true},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.DisableTokens)
	assert.Empty(t, cfg.Auth.TokenSignKey)
}

func TestValidate_NegativeTokenDuration(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{TokenSignKey: "key", TokenDuration: -time.Hour},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidAuthConfigs)
}
