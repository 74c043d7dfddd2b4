// ABOUTME: Tests for the daily workout pipeline.
// ABOUTME: Covers step ordering, failure isolation, and parameter defaults.
package orchestrator

import (
	"context"
	"testing"

	"github.com/harperreed/healthflow/internal/models"
)

func scenarioParams() DailyParams {
	return DailyParams{
		HRVMs:             50,
		BaselineHRV:       65,
		RestingHR:         62,
		BaselineRestingHR: 60,
		SleepHours:        6.8,
		BaselineSleep:     7,
		Surgery:           "ACL reconstruction",
		Restrictions:      []string{"no jumping"},
		Medications:       []string{"warfarin"},
		Equipment:         []string{"bands"},
		TimeAvailable:     30,
	}
}

func TestGenerateDailyWorkoutSucceeds(t *testing.T) {
	fb, srv := newFakeBackend(t)
	c := newTestClient(srv)

	res := c.GenerateDailyWorkout(context.Background(), scenarioParams())
	if !res.Succeeded() {
		t.Fatalf("expected all steps to succeed: %+v", res)
	}
	if res.HRVAnalysis.RecoveryScore != models.RecoveryModerate {
		t.Errorf("recovery = %s, want moderate", res.HRVAnalysis.RecoveryScore)
	}

	calls, workouts, _ := fb.snapshot()
	want := []string{pathHRVAnalyze, pathMedicalParse, pathWorkoutGenerate}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}

	if len(workouts) != 1 {
		t.Fatalf("expected one workout request, got %d", len(workouts))
	}
	w := workouts[0]
	if w.HRVAnalysis != res.HRVAnalysis.Response {
		t.Errorf("workout hrv context = %q, want %q", w.HRVAnalysis, res.HRVAnalysis.Response)
	}
	if w.MedicalConstraints != res.MedicalProfile.Response {
		t.Errorf("workout medical context = %q, want %q", w.MedicalConstraints, res.MedicalProfile.Response)
	}
	if w.TimeAvailable != 30 || len(w.Equipment) != 1 {
		t.Errorf("workout request = %+v", w)
	}
}

func TestGenerateDailyWorkoutIsolatesWorkoutFailure(t *testing.T) {
	_, srv := newFakeBackend(t, pathWorkoutGenerate)
	c := newTestClient(srv)

	res := c.GenerateDailyWorkout(context.Background(), scenarioParams())

	if !res.HRVAnalysis.Success {
		t.Error("expected hrv_analysis.success = true")
	}
	if !res.MedicalProfile.Success {
		t.Error("expected medical_profile.success = true")
	}
	if res.Workout.Success {
		t.Error("expected workout.success = false")
	}
	if res.Workout.Response != FallbackWorkout {
		t.Errorf("workout.response = %q, want %q", res.Workout.Response, FallbackWorkout)
	}
	if res.Succeeded() {
		t.Error("Succeeded() should be false")
	}
}

func TestGenerateDailyWorkoutForwardsFallbackText(t *testing.T) {
	fb, srv := newFakeBackend(t, pathHRVAnalyze)
	c := newTestClient(srv)

	res := c.GenerateDailyWorkout(context.Background(), scenarioParams())
	if res.HRVAnalysis.Success {
		t.Fatal("expected hrv step to fail")
	}
	if !res.Workout.Success {
		t.Error("failure must not halt the pipeline")
	}

	calls, workouts, _ := fb.snapshot()
	if len(calls) != 3 {
		t.Errorf("expected 3 calls, got %v", calls)
	}
	if len(workouts) != 1 || workouts[0].HRVAnalysis != FallbackHRV {
		t.Errorf("expected fallback text forwarded as hrv context, got %+v", workouts)
	}
}

func TestDailyParamsFromDefaults(t *testing.T) {
	p := DailyParamsFrom(models.NewUserProfile(), nil)

	if p.BaselineHRV != 65 || p.HRVMs != 65 {
		t.Errorf("hrv = %v/%v, want 65/65", p.HRVMs, p.BaselineHRV)
	}
	if p.RestingHR != 60 || p.BaselineRestingHR != 60 {
		t.Errorf("resting hr = %v/%v, want 60/60", p.RestingHR, p.BaselineRestingHR)
	}
	if p.SleepHours != 7 || p.BaselineSleep != 7 {
		t.Errorf("sleep = %v/%v, want 7/7", p.SleepHours, p.BaselineSleep)
	}
	if p.Surgery != "None" {
		t.Errorf("surgery = %q, want None", p.Surgery)
	}
	if p.TimeAvailable != 30 {
		t.Errorf("time = %d, want 30", p.TimeAvailable)
	}
	if p.Restrictions == nil || p.Medications == nil || p.Equipment == nil {
		t.Error("list params must be non-nil so they encode as []")
	}
}

func TestDailyParamsFromProfileAndSample(t *testing.T) {
	rhr, sleep := 55.0, 8.0
	profile := models.NewUserProfile().
		WithSurgery("Rotator cuff repair", "2025-01-02", 6).
		WithBaselineHRV(70)
	profile.BaselineRestingHR = &rhr
	profile.BaselineSleep = &sleep
	profile.TimeAvailable = 45
	profile.Goals = []string{"regain mobility"}

	today := models.NewHRVSample("2025-03-05", 52, 70, 63, 6.1)
	p := DailyParamsFrom(profile, today)

	if p.HRVMs != 52 || p.BaselineHRV != 70 {
		t.Errorf("hrv = %v/%v, want 52/70", p.HRVMs, p.BaselineHRV)
	}
	if p.RestingHR != 63 || p.BaselineRestingHR != 55 {
		t.Errorf("resting hr = %v/%v, want 63/55", p.RestingHR, p.BaselineRestingHR)
	}
	if p.SleepHours != 6.1 || p.BaselineSleep != 8 {
		t.Errorf("sleep = %v/%v, want 6.1/8", p.SleepHours, p.BaselineSleep)
	}
	if p.Surgery != "Rotator cuff repair" || p.TimeAvailable != 45 || len(p.Goals) != 1 {
		t.Errorf("params = %+v", p)
	}
}
