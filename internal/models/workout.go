// ABOUTME: WorkoutRecord model for completed or logged training sessions.
// ABOUTME: Records are immutable once saved; history is newest-first.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutRecord represents one logged workout.
type WorkoutRecord struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Date        string    `json:"date" yaml:"date"`
	Type        string    `json:"type" yaml:"type"`
	Completed   bool      `json:"completed" yaml:"completed"`
	WorkoutPlan string    `json:"workoutPlan" yaml:"workout_plan"`
	Intensity   string    `json:"intensity" yaml:"intensity"`
	Duration    int       `json:"duration" yaml:"duration"`
	Exercises   []string  `json:"exercises" yaml:"exercises"`
}

// NewWorkoutRecord creates a completed workout dated today.
func NewWorkoutRecord(workoutType string) *WorkoutRecord {
	return &WorkoutRecord{
		ID:        uuid.New(),
		Date:      DateOf(time.Now()),
		Type:      workoutType,
		Completed: true,
		Exercises: []string{},
	}
}

// WithDate sets the workout date.
func (w *WorkoutRecord) WithDate(date string) *WorkoutRecord {
	w.Date = date
	return w
}

// WithDuration sets the duration in minutes.
func (w *WorkoutRecord) WithDuration(minutes int) *WorkoutRecord {
	w.Duration = minutes
	return w
}

// WithPlan sets the plan text and intensity label.
func (w *WorkoutRecord) WithPlan(plan, intensity string) *WorkoutRecord {
	w.WorkoutPlan = plan
	w.Intensity = intensity
	return w
}

// WithExercises sets the exercise names.
func (w *WorkoutRecord) WithExercises(names ...string) *WorkoutRecord {
	w.Exercises = append([]string{}, names...)
	return w
}

// Skipped marks the workout as not completed.
func (w *WorkoutRecord) Skipped() *WorkoutRecord {
	w.Completed = false
	return w
}
