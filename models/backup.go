package models

// BackupName is the reserved drive file name holding the full snapshot.
// Exactly one record with this name is expected to exist per account.
const BackupName = "daybook.backup.json"

// BackupRecord describes the remote snapshot file as reported by the
// drive's list endpoint: the opaque id used for subsequent reads/writes
// and the stored byte size used by the overwrite safety check.
type BackupRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size,string"`
}
