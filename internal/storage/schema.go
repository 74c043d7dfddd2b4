// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: A single kv table mirrors the browser local-storage layout.
package storage

// initSchema creates or updates the database schema.
func (k *SQLiteKV) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := k.db.Exec(schema)
	return err
}
