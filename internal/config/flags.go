package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path (SQLite file)
//	-c/-config json file path with configs
//	-oauth-client-id identity provider client id
//	-oauth-client-secret identity provider client secret
//	-oauth-auth-endpoint interactive consent URL
//	-oauth-token-endpoint token exchange/refresh URL
//	-oauth-redirect-port loopback redirect port
//	-oauth-scopes requested scope string
//	-drive-api-base drive metadata endpoint base
//	-drive-upload-base drive content upload endpoint base
//	-drive-timeout drive request timeout (e.g., "30s", "1m")
//	-sync-debounce quiet period before a debounced push (e.g., "5s")
//	-seal-key local secret for sealing the refresh token at rest
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var oauthClientID string
	var oauthClientSecret string
	var oauthAuthEndpoint string
	var oauthTokenEndpoint string
	var oauthRedirectPort int
	var oauthScopes string
	var driveAPIBase string
	var driveUploadBase string
	var driveTimeout time.Duration
	var syncDebounce time.Duration
	var sealKey string

	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&oauthClientID, "oauth-client-id", "", "OAuth client id")
	flag.StringVar(&oauthClientSecret, "oauth-client-secret", "", "OAuth client secret")
	flag.StringVar(&oauthAuthEndpoint, "oauth-auth-endpoint", "", "OAuth consent endpoint URL")
	flag.StringVar(&oauthTokenEndpoint, "oauth-token-endpoint", "", "OAuth token endpoint URL")
	flag.IntVar(&oauthRedirectPort, "oauth-redirect-port", 0, "Loopback redirect port")
	flag.StringVar(&oauthScopes, "oauth-scopes", "", "OAuth scope string")
	flag.StringVar(&driveAPIBase, "drive-api-base", "", "Drive API base URL")
	flag.StringVar(&driveUploadBase, "drive-upload-base", "", "Drive upload base URL")
	flag.DurationVar(&driveTimeout, "drive-timeout", 0, "Drive request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncDebounce, "sync-debounce", 0, "Push debounce period (e.g., 5s)")
	flag.StringVar(&sealKey, "seal-key", "", "Local secret for sealing the refresh token")

	flag.Parse()

	return &StructuredConfig{
		OAuth: OAuth{
			ClientID:      oauthClientID,
			ClientSecret:  oauthClientSecret,
			AuthEndpoint:  oauthAuthEndpoint,
			TokenEndpoint: oauthTokenEndpoint,
			RedirectPort:  oauthRedirectPort,
			Scopes:        oauthScopes,
		},
		Drive: Drive{
			APIBase:        driveAPIBase,
			UploadBase:     driveUploadBase,
			RequestTimeout: driveTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{Debounce: syncDebounce},
		App:  App{SealKey: sealKey},

		JSONFilePath: jsonConfigPath,
	}
}
