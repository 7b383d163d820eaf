package store

import (
	"context"

	"github.com/akovalyov/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository persists the full application snapshot in the local
// database. The snapshot is written synchronously on every change; readers
// always see the latest complete state.
type StateRepository interface {
	// LoadState returns the stored snapshot. found is false when no
	// snapshot has ever been saved (fresh install) — that is not an error.
	LoadState(ctx context.Context) (state models.AppState, found bool, err error)

	// SaveState serializes state to JSON and replaces the stored snapshot.
	SaveState(ctx context.Context, state models.AppState) error
}

// TokenRepository persists the OAuth credential set. The refresh token is
// sealed at rest; access token and expiry are stored as-is since they are
// short-lived.
type TokenRepository interface {
	// LoadTokens returns the stored credential set. A zero-value
	// [models.TokenState] (no error) means nothing is stored.
	LoadTokens(ctx context.Context) (models.TokenState, error)

	// SaveTokens replaces the stored credential set.
	SaveTokens(ctx context.Context, tokens models.TokenState) error

	// ClearTokens removes every stored credential, including the account
	// label. Called on sign-out and on refresh-grant rejection.
	ClearTokens(ctx context.Context) error

	// SaveAccountEmail stores the linked account label shown in the UI.
	SaveAccountEmail(ctx context.Context, email string) error

	// AccountEmail returns the stored account label, or "" when not set.
	AccountEmail(ctx context.Context) (string, error)
}

// KV is the low-level key-value interface both repositories are built on.
type KV interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
