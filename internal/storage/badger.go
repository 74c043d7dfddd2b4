// ABOUTME: Badger-backed KV medium for an embedded LSM store.
// ABOUTME: One badger directory per data dir; values are stored verbatim.
package storage

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerKV stores keys in an embedded badger database.
type BadgerKV struct {
	db *badger.DB
}

var _ KV = (*BadgerKV)(nil)

// OpenBadger opens or creates a badger database in dir.
func OpenBadger(dir string) (*BadgerKV, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (b *BadgerKV) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (b *BadgerKV) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (b *BadgerKV) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
