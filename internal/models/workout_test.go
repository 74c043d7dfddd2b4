// ABOUTME: Tests for WorkoutRecord model.
// ABOUTME: Validates constructor defaults and builder methods.
package models

import (
	"testing"
	"time"
)

func TestNewWorkoutRecord(t *testing.T) {
	w := NewWorkoutRecord("mobility")

	if w.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if w.Type != "mobility" {
		t.Errorf("Type = %s, want mobility", w.Type)
	}
	if !w.Completed {
		t.Error("expected new workout to be completed")
	}
	if w.Date != DateOf(time.Now()) {
		t.Errorf("Date = %s, want today", w.Date)
	}
}

func TestWorkoutRecordBuilders(t *testing.T) {
	w := NewWorkoutRecord("strength").
		WithDate("2025-03-01").
		WithDuration(45).
		WithPlan("3x10 goblet squat", "Moderate").
		WithExercises("goblet squat", "glute bridge")

	if w.Date != "2025-03-01" {
		t.Errorf("Date = %s, want 2025-03-01", w.Date)
	}
	if w.Duration != 45 {
		t.Errorf("Duration = %d, want 45", w.Duration)
	}
	if w.Intensity != "Moderate" {
		t.Errorf("Intensity = %s, want Moderate", w.Intensity)
	}
	if len(w.Exercises) != 2 {
		t.Errorf("expected 2 exercises, got %d", len(w.Exercises))
	}

	if w.Skipped().Completed {
		t.Error("expected Skipped to clear Completed")
	}
}
