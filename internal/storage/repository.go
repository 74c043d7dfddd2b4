// ABOUTME: Repository interface for healthflow persistence.
// ABOUTME: Defines the profile, workout, HRV and streak operations callers depend on.
package storage

import (
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// Repository defines the storage interface for healthflow data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Profile operations
	SaveProfile(p *models.UserProfile) error
	GetProfile() (*models.UserProfile, error)
	UpdateProfile(update func(p *models.UserProfile)) error
	IsNewUser() (bool, error)

	// Workout operations
	SaveWorkout(w *models.WorkoutRecord) error
	GetWorkoutHistory(limit int) ([]*models.WorkoutRecord, error)
	GetRecentWorkouts(count int) ([]*models.WorkoutRecord, error)

	// HRV operations
	SaveHRVSample(s *models.HRVSample) error
	GetHRVHistory(limit int) ([]*models.HRVSample, error)
	GetTodayHRV(now time.Time) (*models.HRVSample, error)
	GetHRVTrend(days int) ([]*models.HRVSample, error)

	// Statistics
	Progress(days int) (*models.Progress, error)

	// Streak operations
	UpdateStreak(date string, completed bool) error
	GetCurrentStreak() (int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(since *time.Time) (string, error)
	ImportJSON(data []byte) error

	// Lifecycle
	ClearAllData() error
	Close() error
}
