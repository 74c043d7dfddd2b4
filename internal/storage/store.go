// ABOUTME: Store implements Repository over a KV medium.
// ABOUTME: Handles retention caps, HRV upsert-by-date and streak arithmetic.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harperreed/healthflow/internal/logger"
	"github.com/harperreed/healthflow/internal/models"
)

// Retention caps for the history lists.
const (
	MaxWorkoutHistory = 100
	MaxHRVHistory     = 90

	defaultRecentWorkouts = 5
	defaultTrendDays      = 7
)

// Store persists healthflow entities as JSON values in a KV medium.
type Store struct {
	kv  KV
	log *logger.Logger

	// mu serialises read-modify-write cycles on the history keys.
	mu sync.Mutex
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)

// NewStore wraps kv. A nil logger discards log output.
func NewStore(kv KV, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log.With("component", "store")}
}

// Close closes the underlying medium.
func (s *Store) Close() error {
	return s.kv.Close()
}

// SaveProfile replaces the stored profile wholesale.
func (s *Store) SaveProfile(p *models.UserProfile) error {
	if err := s.writeJSON(KeyUserProfile, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil when there is none.
func (s *Store) GetProfile() (*models.UserProfile, error) {
	p, ok, err := readJSON[models.UserProfile](s, KeyUserProfile)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// UpdateProfile applies update to the stored profile and saves it.
// It does nothing when no profile exists.
func (s *Store) UpdateProfile(update func(p *models.UserProfile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.GetProfile()
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	update(p)
	return s.SaveProfile(p)
}

// IsNewUser reports whether no profile has been saved.
func (s *Store) IsNewUser() (bool, error) {
	p, err := s.GetProfile()
	if err != nil {
		return false, err
	}
	return p == nil, nil
}

// SaveWorkout prepends w to the history, keeps the newest 100 and
// updates the streak from w's date and completion.
func (s *Store) SaveWorkout(w *models.WorkoutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.workoutHistory()
	if err != nil {
		return fmt.Errorf("save workout: %w", err)
	}

	history = append([]*models.WorkoutRecord{w}, history...)
	if len(history) > MaxWorkoutHistory {
		history = history[:MaxWorkoutHistory]
	}

	if err := s.writeJSON(KeyWorkoutHistory, history); err != nil {
		return fmt.Errorf("save workout: %w", err)
	}

	return s.updateStreak(w.Date, w.Completed)
}

// GetWorkoutHistory returns workouts newest first. A limit <= 0 returns all.
func (s *Store) GetWorkoutHistory(limit int) ([]*models.WorkoutRecord, error) {
	history, err := s.workoutHistory()
	if err != nil {
		return nil, fmt.Errorf("get workout history: %w", err)
	}
	return headOf(history, limit), nil
}

// GetRecentWorkouts returns the newest count workouts (default 5).
func (s *Store) GetRecentWorkouts(count int) ([]*models.WorkoutRecord, error) {
	if count <= 0 {
		count = defaultRecentWorkouts
	}
	return s.GetWorkoutHistory(count)
}

// SaveHRVSample upserts a sample by date. An existing sample for the same
// date is replaced in place; otherwise the sample is prepended. The newest
// 90 samples are kept.
func (s *Store) SaveHRVSample(sample *models.HRVSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.hrvHistory()
	if err != nil {
		return fmt.Errorf("save hrv sample: %w", err)
	}

	replaced := false
	for i, h := range history {
		if h.Date == sample.Date {
			history[i] = sample
			replaced = true
			break
		}
	}
	if !replaced {
		history = append([]*models.HRVSample{sample}, history...)
	}
	if len(history) > MaxHRVHistory {
		history = history[:MaxHRVHistory]
	}

	if err := s.writeJSON(KeyHRVHistory, history); err != nil {
		return fmt.Errorf("save hrv sample: %w", err)
	}
	return nil
}

// GetHRVHistory returns samples newest first. A limit <= 0 returns all.
func (s *Store) GetHRVHistory(limit int) ([]*models.HRVSample, error) {
	history, err := s.hrvHistory()
	if err != nil {
		return nil, fmt.Errorf("get hrv history: %w", err)
	}
	return headOf(history, limit), nil
}

// GetTodayHRV returns the sample dated on now's calendar day, or nil.
func (s *Store) GetTodayHRV(now time.Time) (*models.HRVSample, error) {
	history, err := s.GetHRVHistory(0)
	if err != nil {
		return nil, err
	}
	today := models.DateOf(now)
	for _, h := range history {
		if h.Date == today {
			return h, nil
		}
	}
	return nil, nil
}

// GetHRVTrend returns the newest days samples (default 7) oldest first.
func (s *Store) GetHRVTrend(days int) ([]*models.HRVSample, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	recent, err := s.GetHRVHistory(days)
	if err != nil {
		return nil, err
	}
	trend := make([]*models.HRVSample, len(recent))
	for i, h := range recent {
		trend[len(recent)-1-i] = h
	}
	return trend, nil
}

// Progress summarizes the newest days HRV samples and workouts
// (default 7).
func (s *Store) Progress(days int) (*models.Progress, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	samples, err := s.GetHRVHistory(days)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	workouts, err := s.GetWorkoutHistory(days)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return models.ComputeProgress(days, samples, workouts), nil
}

// UpdateStreak advances the workout streak for a completed workout on date.
func (s *Store) UpdateStreak(date string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateStreak(date, completed)
}

// updateStreak expects s.mu to be held.
func (s *Store) updateStreak(date string, completed bool) error {
	if !completed {
		return nil
	}

	lastDate, hasLast, err := readJSON[string](s, KeyLastWorkoutDate)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	current, _, err := readJSON[int](s, KeyCurrentStreak)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
	}

	next := current
	if !hasLast {
		next = 1
	} else if diff, err := models.DaysBetween(lastDate, date); err != nil {
		s.log.Warn("cannot compare workout dates", "last", lastDate, "date", date, "error", err)
		next = 1
	} else if diff == 1 {
		next = current + 1
	} else if diff > 1 {
		next = 1
	}
	// Same-day and out-of-order dates leave the count alone.

	if next != current || !hasLast {
		if err := s.writeJSON(KeyCurrentStreak, next); err != nil {
			return fmt.Errorf("update streak: %w", err)
		}
	}
	if err := s.writeJSON(KeyLastWorkoutDate, date); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	return nil
}

// GetCurrentStreak returns the stored streak, 0 if never set.
func (s *Store) GetCurrentStreak() (int, error) {
	streak, _, err := readJSON[int](s, KeyCurrentStreak)
	if err != nil {
		return 0, fmt.Errorf("get current streak: %w", err)
	}
	return streak, nil
}

// lastWorkoutDate returns the recorded last workout date, or "".
func (s *Store) lastWorkoutDate() (string, error) {
	date, _, err := readJSON[string](s, KeyLastWorkoutDate)
	return date, err
}

// ClearAllData deletes every stored entity.
func (s *Store) ClearAllData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range AllKeys {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("clear all data: %w", err)
		}
	}
	return nil
}

func (s *Store) workoutHistory() ([]*models.WorkoutRecord, error) {
	history, _, err := readJSON[[]*models.WorkoutRecord](s, KeyWorkoutHistory)
	if err != nil {
		return nil, err
	}
	return compact(history), nil
}

func (s *Store) hrvHistory() ([]*models.HRVSample, error) {
	history, _, err := readJSON[[]*models.HRVSample](s, KeyHRVHistory)
	if err != nil {
		return nil, err
	}
	return compact(history), nil
}

// readJSON decodes the value under key. Missing and undecodable values
// both report ok=false with a nil error; only medium failures are errors.
func readJSON[T any](s *Store, key string) (T, bool, error) {
	var zero T
	data, err := s.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn("ignoring corrupt record", "key", key, "error", err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *Store) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.kv.Set(key, data)
}

// headOf returns at most limit leading items, never nil.
func headOf[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		return []T{}
	}
	return items
}

// compact drops null entries left by hand-edited or partial records.
func compact[T any](items []*T) []*T {
	out := items[:0]
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
