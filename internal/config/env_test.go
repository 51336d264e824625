package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"ADAPTER_API_URL":         "https://api.inohub.com.br",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_SESSION_DB":   "/var/lib/console/session.db",
		"STORAGE_DOWNLOAD_DIR": "/home/op/downloads",

		"SERVER_ADDRESS":        "localhost:8080",
		"SERVER_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_TOKEN_DURATION": "1h",
		"SERVER_READY_AFTER":    "5s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.inohub.com.br", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/console/session.db", cfg.Storage.SessionDSN)
	assert.Equal(t, "/home/op/downloads", cfg.Storage.DownloadDir)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadyAfter)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("ADAPTER_API_URL", "http://localhost:9999")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.SessionDSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
