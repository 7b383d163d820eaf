package service

import "errors"

var (
	// ErrSessionExpired means the stored grant can no longer be refreshed
	// and the user has to link the account again.
	ErrSessionExpired = errors.New("session expired: sign in again")

	// ErrNotConnected means no account is linked.
	ErrNotConnected = errors.New("no account connected")

	// ErrEmptyOverwrite is the safety lock: a push that would replace a
	// non-trivial remote backup with an empty state is refused.
	ErrEmptyOverwrite = errors.New("refusing to overwrite remote backup with empty state")

	// ErrLookupFailed means the backup record query itself failed, which is
	// distinct from the backup being absent.
	ErrLookupFailed = errors.New("backup lookup failed")

	// ErrRemoteStateCorrupt means the downloaded backup is not decodable.
	ErrRemoteStateCorrupt = errors.New("remote state is corrupt")

	// ErrSyncBusy means a sync pass is already in flight.
	ErrSyncBusy = errors.New("sync already in progress")

	// ErrConsentDenied means the user rejected the consent screen.
	ErrConsentDenied = errors.New("consent denied")
)
