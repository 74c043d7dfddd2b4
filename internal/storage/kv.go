// ABOUTME: KV interface for the local key-value medium behind the store.
// ABOUTME: Defines the storage keys and the not-found sentinel.
package storage

import "errors"

// ErrNotFound is returned by KV.Get when a key holds no value.
var ErrNotFound = errors.New("not found")

// Storage keys. Each holds one JSON-encoded value.
const (
	KeyUserProfile     = "healthflow_user_profile"
	KeyWorkoutHistory  = "healthflow_workout_history"
	KeyHRVHistory      = "healthflow_hrv_history"
	KeyCurrentStreak   = "healthflow_current_streak"
	KeyLastWorkoutDate = "healthflow_last_workout_date"
)

// AllKeys lists every key the store writes.
var AllKeys = []string{
	KeyUserProfile,
	KeyWorkoutHistory,
	KeyHRVHistory,
	KeyCurrentStreak,
	KeyLastWorkoutDate,
}

// KV is a minimal byte-oriented key-value medium.
// Implementations must be safe for concurrent use.
type KV interface {
	// Get returns ErrNotFound when the key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}
