// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SEAL_KEY": "seal_secret",
		"APP_VERSION":  "1.2.3",

		"OAUTH_CLIENT_ID":      "client-id",
		"OAUTH_CLIENT_SECRET":  "client-secret",
		"OAUTH_AUTH_ENDPOINT":  "https://idp.example.com/auth",
		"OAUTH_TOKEN_ENDPOINT": "https://idp.example.com/token",
		"OAUTH_REDIRECT_PORT":  "53682",
		"OAUTH_SCOPES":         "drive.file openid",

		"DRIVE_API_BASE":        "https://drive.example.com/v3",
		"DRIVE_UPLOAD_BASE":     "https://upload.example.com/v3",
		"DRIVE_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.daybook/daybook.db",

		"SYNC_DEBOUNCE": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "seal_secret", cfg.App.SealKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "client-id", cfg.OAuth.ClientID)
	assert.Equal(t, "client-secret", cfg.OAuth.ClientSecret)
	assert.Equal(t, "https://idp.example.com/auth", cfg.OAuth.AuthEndpoint)
	assert.Equal(t, "https://idp.example.com/token", cfg.OAuth.TokenEndpoint)
	assert.Equal(t, 53682, cfg.OAuth.RedirectPort)
	assert.Equal(t, "drive.file openid", cfg.OAuth.Scopes)

	assert.Equal(t, "https://drive.example.com/v3", cfg.Drive.APIBase)
	assert.Equal(t, "https://upload.example.com/v3", cfg.Drive.UploadBase)
	assert.Equal(t, 30*time.Second, cfg.Drive.RequestTimeout)

	assert.Equal(t, "/home/user/.daybook/daybook.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Sync.Debounce)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"OAUTH_CLIENT_ID": "only-client-id",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only-client-id", cfg.OAuth.ClientID)
	assert.Empty(t, cfg.OAuth.ClientSecret)
	assert.Zero(t, cfg.Drive.RequestTimeout)
}

func TestParseEnv_BadDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_DEBOUNCE": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}
