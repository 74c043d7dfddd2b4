// ABOUTME: Tests for progress statistics.
// ABOUTME: Covers distribution, tie-breaking, per-type counts and minutes.
package models

import "testing"

func TestComputeProgress(t *testing.T) {
	samples := []*HRVSample{
		NewHRVSample("2025-03-04", 66, 65, 60, 7), // optimal
		NewHRVSample("2025-03-03", 58, 65, 60, 7), // good
		NewHRVSample("2025-03-02", 57, 65, 60, 7), // good
		NewHRVSample("2025-03-01", 40, 65, 60, 7), // poor
	}
	workouts := []*WorkoutRecord{
		NewWorkoutRecord("mobility").WithDuration(20),
		NewWorkoutRecord("strength").WithDuration(35),
		NewWorkoutRecord("mobility").WithDuration(15),
	}

	p := ComputeProgress(ProgressWeek, samples, workouts)

	if p.Days != 7 {
		t.Errorf("Days = %d, want 7", p.Days)
	}
	if p.HRVSamples != 4 {
		t.Errorf("HRVSamples = %d, want 4", p.HRVSamples)
	}
	// (66+58+57+40)/4 = 55.25
	if p.AverageHRV != 55 {
		t.Errorf("AverageHRV = %d, want 55", p.AverageHRV)
	}

	wantDist := map[Recovery]int{
		RecoveryOptimal:  1,
		RecoveryGood:     2,
		RecoveryModerate: 0,
		RecoveryPoor:     1,
	}
	for r, want := range wantDist {
		if got := p.RecoveryDistribution[r]; got != want {
			t.Errorf("RecoveryDistribution[%s] = %d, want %d", r, got, want)
		}
	}
	if p.MostCommonRecovery != RecoveryGood {
		t.Errorf("MostCommonRecovery = %s, want good", p.MostCommonRecovery)
	}

	if p.Workouts != 3 {
		t.Errorf("Workouts = %d, want 3", p.Workouts)
	}
	if p.WorkoutsByType["mobility"] != 2 || p.WorkoutsByType["strength"] != 1 {
		t.Errorf("WorkoutsByType = %v", p.WorkoutsByType)
	}
	if p.TotalMinutes != 70 {
		t.Errorf("TotalMinutes = %d, want 70", p.TotalMinutes)
	}
}

func TestComputeProgressTieFavorsBetterBand(t *testing.T) {
	samples := []*HRVSample{
		NewHRVSample("2025-03-02", 40, 65, 60, 7), // poor
		NewHRVSample("2025-03-01", 60, 65, 60, 7), // good
	}

	p := ComputeProgress(ProgressWeek, samples, nil)
	if p.MostCommonRecovery != RecoveryGood {
		t.Errorf("MostCommonRecovery = %s, want good", p.MostCommonRecovery)
	}
}

func TestComputeProgressEmpty(t *testing.T) {
	p := ComputeProgress(ProgressMonth, nil, nil)

	if p.AverageHRV != 0 || p.Workouts != 0 || p.TotalMinutes != 0 {
		t.Errorf("expected zero stats, got %+v", p)
	}
	if p.MostCommonRecovery != "" {
		t.Errorf("MostCommonRecovery = %q, want empty", p.MostCommonRecovery)
	}
	if len(p.RecoveryDistribution) != 4 {
		t.Errorf("expected all four bands present, got %v", p.RecoveryDistribution)
	}
	if p.WorkoutsByType == nil {
		t.Error("WorkoutsByType should be an empty map, not nil")
	}
}
