package syncengine

import "time"

// IsConflict reports whether pushing a dirty local copy would overwrite
// remote changes the device has not seen: the remote write time is strictly
// after the last sync (a nil lastSyncedAt means never synced) and the local
// copy has unsynced edits.
func IsConflict(cloudUpdatedAt time.Time, lastSyncedAt *time.Time, needsSync bool) bool {
	return needsSync && remoteIsNewer(cloudUpdatedAt, lastSyncedAt)
}

// remoteIsNewer compares against -infinity when lastSyncedAt is nil.
func remoteIsNewer(cloudUpdatedAt time.Time, lastSyncedAt *time.Time) bool {
	if lastSyncedAt == nil {
		return true
	}
	return cloudUpdatedAt.After(*lastSyncedAt)
}
