// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestStore over SQLite and in-memory media.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "healthflow.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	s := NewStore(kv, nil)
	t.Cleanup(func() { s.Close() })
	return s
}

func setupMemoryStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryKV(), nil)
}
