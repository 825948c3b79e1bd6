package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "credentials.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "token.json", cfg.Google.TokenFile)
	assert.Equal(t, "api_key.txt", cfg.Model.APIKeyFile)
	assert.NotEmpty(t, cfg.Model.Primary)
	assert.NotEmpty(t, cfg.Model.Fallback)
	assert.NotEqual(t, cfg.Model.Primary, cfg.Model.Fallback)
	assert.Equal(t, "Sheet1!A2:D", cfg.Sheet.Range)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("COLDREACH_MODEL_PRIMARY", "custom-model")
	t.Setenv("COLDREACH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "custom-model", cfg.Model.Primary)
	assert.Equal(t, "debug", cfg.Log.Level)
}
