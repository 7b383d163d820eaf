package models

// SyncStatus is the derived state of the cloud backup link. It is never
// persisted: it is recomputed from the latest sync attempt and from
// whether a refresh token exists.
type SyncStatus int

const (
	// SyncDisconnected — no linked account. Entered only by explicit
	// sign-out (or first launch).
	SyncDisconnected SyncStatus = iota

	// SyncInProgress — a pull or push is in flight.
	SyncInProgress

	// SyncOK — the most recent pull or push succeeded.
	SyncOK

	// SyncError — the most recent pull or push failed. Not terminal: any
	// later successful sync returns the status to SyncOK.
	SyncError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncDisconnected:
		return "disconnected"
	case SyncInProgress:
		return "syncing"
	case SyncOK:
		return "synced"
	case SyncError:
		return "error"
	default:
		return "unknown"
	}
}
