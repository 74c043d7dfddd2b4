// ABOUTME: Conformance tests shared by every KV medium.
// ABOUTME: Runs the same get/set/delete contract against SQLite, badger and memory.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func kvImplementations(t *testing.T) map[string]KV {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	bdg, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { bdg.Close() })

	return map[string]KV{
		"sqlite": sqlite,
		"badger": bdg,
		"memory": NewMemoryKV(),
	}
}

func TestKVContract(t *testing.T) {
	for name, kv := range kvImplementations(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := kv.Set(KeyCurrentStreak, []byte("3")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := kv.Get(KeyCurrentStreak)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != "3" {
				t.Errorf("Get = %q, want %q", got, "3")
			}

			if err := kv.Set(KeyCurrentStreak, []byte("4")); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}
			got, _ = kv.Get(KeyCurrentStreak)
			if string(got) != "4" {
				t.Errorf("Get after overwrite = %q, want %q", got, "4")
			}

			if err := kv.Delete(KeyCurrentStreak); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := kv.Get(KeyCurrentStreak); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after delete error = %v, want ErrNotFound", err)
			}
			if err := kv.Delete(KeyCurrentStreak); err != nil {
				t.Errorf("Delete of absent key should succeed: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "healthflow.db")

	kv, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := NewStore(kv, nil).UpdateStreak("2025-03-01", true); err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	kv.Close()

	kv, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv.Close()

	n, err := NewStore(kv, nil).GetCurrentStreak()
	if err != nil {
		t.Fatalf("GetCurrentStreak failed: %v", err)
	}
	if n != 1 {
		t.Errorf("streak = %d, want 1", n)
	}
}

func TestOpenRedisInvalidURL(t *testing.T) {
	if _, err := OpenRedis("not-a-redis-url", ""); err == nil {
		t.Error("expected error for invalid redis url")
	}
}

func TestNewRedisKVDefaultPrefix(t *testing.T) {
	r := NewRedisKV(nil, "")
	if r.prefix != DefaultRedisPrefix {
		t.Errorf("prefix = %q, want %q", r.prefix, DefaultRedisPrefix)
	}
}
