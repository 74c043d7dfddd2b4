// ABOUTME: In-process KV medium backed by a map.
// ABOUTME: Used by tests and ephemeral runs; nothing survives Close.
package storage

import "sync"

// MemoryKV is a map-backed KV.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ KV = (*MemoryKV)(nil)

// NewMemoryKV returns an empty in-memory medium.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}
