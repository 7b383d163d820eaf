// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// daybook client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the local sealing
	// secret and the application version.
	App App `envPrefix:"APP_"`

	// OAuth holds identity-provider settings for the drive account link:
	// client credentials, endpoints, and the loopback redirect port.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Drive holds the cloud drive API endpoints and request timeouts used
	// by the remote backup gateway.
	Drive Drive `envPrefix:"DRIVE_"`

	// Storage holds local persistence settings (the SQLite database).
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds background synchronization settings such as the debounce
	// quiet period.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SealKey is the local secret used to seal the refresh token at rest.
	// Must be kept confidential and stable between runs, otherwise the
	// stored refresh token cannot be opened and the user has to re-consent.
	// Env: APP_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// OAuth holds the identity provider settings used by the account linker.
type OAuth struct {
	// ClientID identifies this application at the identity provider.
	// Env: OAUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret authenticates this application at the token endpoint.
	// Env: OAUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// AuthEndpoint is the interactive consent URL
	// (e.g. "https://accounts.google.com/o/oauth2/v2/auth").
	// Env: OAUTH_AUTH_ENDPOINT
	AuthEndpoint string `env:"AUTH_ENDPOINT"`

	// TokenEndpoint is the code-exchange and refresh URL
	// (e.g. "https://oauth2.googleapis.com/token").
	// Env: OAUTH_TOKEN_ENDPOINT
	TokenEndpoint string `env:"TOKEN_ENDPOINT"`

	// RedirectPort is the loopback TCP port on which the client listens
	// for the one-time authorization code redirect.
	// Env: OAUTH_REDIRECT_PORT
	RedirectPort int `env:"REDIRECT_PORT"`

	// Scopes is the space-separated scope string requested at consent.
	// Env: OAUTH_SCOPES
	Scopes string `env:"SCOPES"`
}

// Drive holds the cloud drive API settings used by the backup gateway.
type Drive struct {
	// APIBase is the metadata/list endpoint base
	// (e.g. "https://www.googleapis.com/drive/v3").
	// Env: DRIVE_API_BASE
	APIBase string `env:"API_BASE"`

	// UploadBase is the content upload endpoint base
	// (e.g. "https://www.googleapis.com/upload/drive/v3").
	// Env: DRIVE_UPLOAD_BASE
	UploadBase string `env:"UPLOAD_BASE"`

	// RequestTimeout is the default timeout for outbound drive requests
	// (e.g. "30s", "1m").
	// Env: DRIVE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "~/.daybook/daybook.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds background synchronization settings.
type Sync struct {
	// Debounce is the quiet period after the last local mutation before a
	// push is issued (e.g. "5s"). A new mutation arriving before the timer
	// fires cancels and reschedules it.
	// Env: SYNC_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// GetStructuredConfig loads, merges, and validates the client
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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
