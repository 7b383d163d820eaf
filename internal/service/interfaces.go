package service

import (
	"context"

	"github.com/akovalyov/daybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthSession владеет жизненным циклом пары токенов OAuth.
type AuthSession interface {
	// SaveTokens persists a token grant. The expiry instant is derived from
	// the grant's lifetime minus a safety margin, and a previously stored
	// refresh token survives a response that does not reissue one.
	SaveTokens(ctx context.Context, grant models.TokenResponse) error
	// EnsureValidToken returns an access token that is safe to use right now,
	// refreshing it first when the stored one is expired.
	EnsureValidToken(ctx context.Context) (string, error)
	Connected(ctx context.Context) bool
	AccountEmail(ctx context.Context) string
	SignOut(ctx context.Context) error
}

// AccountLinker runs the interactive consent flow that links a cloud account.
type AccountLinker interface {
	// Link blocks until the user grants or denies consent in the browser,
	// or ctx is cancelled.
	Link(ctx context.Context) error
	// ConsentURL returns the URL of the consent page for the most recent
	// Link call, once it is known.
	ConsentURL() string
}

// RemoteStateService reads and writes the application state backup on the remote drive.
type RemoteStateService interface {
	// Fetch downloads the remote state. found is false when no backup exists yet.
	Fetch(ctx context.Context) (state models.AppState, found bool, err error)
	// Push uploads state, creating the backup record on first use.
	Push(ctx context.Context, state models.AppState) error
}

// SyncOrchestrator связывает локальное хранилище с удалённым диском.
type SyncOrchestrator interface {
	// Connect pulls the remote state and replaces the local one with it.
	Connect(ctx context.Context) error
	// Apply persists state locally and schedules a debounced push.
	Apply(ctx context.Context, state models.AppState) error
	// SyncNow pushes the current local state immediately.
	SyncNow(ctx context.Context) error
	SignOut(ctx context.Context) error
	LocalState(ctx context.Context) (models.AppState, error)
	Status() models.SyncStatus
	LastError() error
	Close()
}
