package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SealKey is the local secret used to seal the refresh token at rest.
	SealKey string
	// Version is the application version string.
	Version string
}

// ClientOAuth holds identity-provider settings used by the account linker.
type ClientOAuth struct {
	// ClientID identifies the application at the identity provider.
	ClientID string
	// ClientSecret authenticates the application at the token endpoint.
	ClientSecret string
	// AuthEndpoint is the interactive consent URL.
	AuthEndpoint string
	// TokenEndpoint is the code-exchange and refresh URL.
	TokenEndpoint string
	// RedirectPort is the loopback port for the authorization redirect.
	RedirectPort int
	// Scopes is the space-separated scope string requested at consent.
	Scopes string
}

// ClientDrive holds the drive gateway endpoints and timeouts.
type ClientDrive struct {
	// APIBase is the metadata/list endpoint base.
	APIBase string
	// UploadBase is the content upload endpoint base.
	UploadBase string
	// RequestTimeout is the default timeout for outbound drive requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains background synchronization settings.
type ClientSync struct {
	// Debounce defines the quiet period before a debounced push fires.
	Debounce time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// OAuth contains identity provider settings.
	OAuth ClientOAuth
	// Drive contains drive gateway endpoints and timeouts.
	Drive ClientDrive
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains background synchronization settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for optional values,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SealKey: cfg.App.SealKey,
			Version: cfg.App.Version,
		},
		OAuth: ClientOAuth{
			ClientID:      cfg.OAuth.ClientID,
			ClientSecret:  cfg.OAuth.ClientSecret,
			AuthEndpoint:  cfg.OAuth.AuthEndpoint,
			TokenEndpoint: cfg.OAuth.TokenEndpoint,
			RedirectPort:  cfg.OAuth.RedirectPort,
			Scopes:        cfg.OAuth.Scopes,
		},
		Drive: ClientDrive{
			APIBase:        cfg.Drive.APIBase,
			UploadBase:     cfg.Drive.UploadBase,
			RequestTimeout: cfg.Drive.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{Debounce: cfg.Sync.Debounce},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Sync.Debounce == 0 {
		cfg.Sync.Debounce = 5 * time.Second
	}
	if cfg.Drive.RequestTimeout == 0 {
		cfg.Drive.RequestTimeout = 30 * time.Second
	}
	if cfg.OAuth.RedirectPort == 0 {
		cfg.OAuth.RedirectPort = 53682
	}
	if cfg.OAuth.Scopes == "" {
		cfg.OAuth.Scopes = "https://www.googleapis.com/auth/drive.file openid email"
	}
}
