// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

// Package adapter provides transport-layer clients for the two external
// services the daybook client talks to: the identity provider's token
// endpoint and the cloud drive API.
//
// The abstractions are [TokenClient] and [DriveGateway]; both ship an
// HTTP/REST implementation backed by resty. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/akovalyov/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenClient performs the two token-endpoint grants. Implementations are
// responsible for form encoding, client credentials, and mapping the
// provider's error body onto [ErrGrantRejected].
type TokenClient interface {
	// ExchangeCode redeems a one-time authorization code for a full
	// credential set (access token, expiry, refresh token, id_token).
	// The redirectURI must match the one used at consent.
	ExchangeCode(ctx context.Context, code, redirectURI string) (models.TokenResponse, error)

	// Refresh performs a refresh_token grant. The reply carries a new
	// access token and expiry; the provider does not reissue the refresh
	// token on every call. A rejected grant (revoked consent) surfaces as
	// [ErrGrantRejected].
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)
}

// DriveGateway is the raw drive API client. It knows nothing about token
// lifecycles: every call receives an access token assumed to be valid.
type DriveGateway interface {
	// FindBackup queries the drive for the reserved backup record by exact
	// name, excluding trashed files. found is false when no record exists;
	// a failed query is an error, not "absent".
	FindBackup(ctx context.Context, accessToken string) (record models.BackupRecord, found bool, err error)

	// Download returns the raw content of the file identified by fileID.
	Download(ctx context.Context, accessToken, fileID string) ([]byte, error)

	// Create uploads content as a new drive file with the reserved backup
	// name and returns the created record.
	Create(ctx context.Context, accessToken string, content []byte) (models.BackupRecord, error)

	// Update replaces the content of the existing file identified by
	// fileID in full.
	Update(ctx context.Context, accessToken, fileID string, content []byte) error
}
