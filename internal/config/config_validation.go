// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view performs the real
// validation in [ClientConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" ||
		cfg.OAuth.AuthEndpoint == "" || cfg.OAuth.TokenEndpoint == "" {
		return ErrInvalidOAuthConfigs
	}

	if cfg.Drive.APIBase == "" || cfg.Drive.UploadBase == "" || cfg.Drive.RequestTimeout == 0 {
		return ErrInvalidDriveConfigs
	}

	if cfg.Sync.Debounce <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.SealKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
