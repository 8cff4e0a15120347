// Package persistence stores the gallery's two persisted concerns, the
// collection snapshot and the session flag, as independent entries in a
// SQLite-backed key-value table. Each concern is written whole under its
// own key so a failure in one never corrupts the other.
package persistence

const (
	collectionKey = "gallery/collection"
	sessionKey    = "gallery/session"
)

const getEntryQuery = `
	SELECT value FROM kv_entries WHERE key = ?
`

const putEntryQuery = `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

const deleteEntryQuery = `
	DELETE FROM kv_entries WHERE key = ?
`
