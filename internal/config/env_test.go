package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "48h")
	t.Setenv("AUTH_DISABLE_TOKENS", "true")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://user:pw@localhost:5432/grindtime")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("SEARCH_USDA_API_KEY", "usda-key")
	t.Setenv("SEARCH_YOUTUBE_API_KEY", "yt-key")
	t.Setenv("SEARCH_TIMEOUT", "10s")
	t.Setenv("CONFIG", "/etc/grindtime/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenDuration)
	assert.True(t, cfg.Auth.DisableTokens)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://user:pw@localhost:5432/grindtime", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "usda-key", cfg.Search.USDAAPIKey)
	assert.Equal(t, "yt-key", cfg.Search.YouTubeAPIKey)
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "/etc/grindtime/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Zero(t, cfg.Auth)
	assert.Zero(t, cfg.Server)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
