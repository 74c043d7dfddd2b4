// ABOUTME: SQLite-backed KV medium and data directory helpers.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteKV stores each key as one row in a kv table.
type SQLiteKV struct {
	db     *sql.DB
	dbPath string
}

var _ KV = (*SQLiteKV)(nil)

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLiteKV, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	kv := &SQLiteKV{db: db, dbPath: dbPath}

	if err := kv.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := kv.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	// The file exists once the schema has been written.
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	return kv, nil
}

// DataDir returns the default data directory under XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "healthflow")
}

// DefaultDBPath returns the default database path under XDG_DATA_HOME.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "healthflow.db")
}

// Path returns the database file path.
func (k *SQLiteKV) Path() string {
	return k.dbPath
}

func (k *SQLiteKV) Get(key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (k *SQLiteKV) Set(key string, value []byte) error {
	_, err := k.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (k *SQLiteKV) Delete(key string) error {
	if _, err := k.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (k *SQLiteKV) Close() error {
	if k.db != nil {
		return k.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for optimal performance.
func (k *SQLiteKV) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := k.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}
