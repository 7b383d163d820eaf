package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidOAuthConfigs indicates invalid identity-provider settings
	// (for example, missing client credentials or endpoints).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidDriveConfigs indicates invalid drive gateway settings
	// (for example, missing API base or request timeout).
	ErrInvalidDriveConfigs = errors.New("invalid drive configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, missing seal key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSyncConfigs indicates invalid background sync settings
	// (for example, non-positive debounce period).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
