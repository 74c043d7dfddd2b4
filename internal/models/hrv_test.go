// ABOUTME: Tests for HRV deviation, classification and intensity advice.
// ABOUTME: Covers band edges and the zero-baseline guard.
package models

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		deviation float64
		want      Recovery
	}{
		{10, RecoveryOptimal},
		{0, RecoveryOptimal},
		{-4.9, RecoveryOptimal},
		{-5, RecoveryGood},
		{-14.9, RecoveryGood},
		{-15, RecoveryModerate},
		{-24.9, RecoveryModerate},
		{-25, RecoveryPoor},
		{-60, RecoveryPoor},
	}

	for _, tt := range tests {
		if got := Classify(tt.deviation); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.deviation, got, tt.want)
		}
	}
}

func TestDeviation(t *testing.T) {
	got := Deviation(50, 65)
	want := (50.0 - 65.0) / 65.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Deviation(50, 65) = %v, want %v", got, want)
	}
	if Classify(got) != RecoveryModerate {
		t.Errorf("expected moderate for %v, got %s", got, Classify(got))
	}

	if Deviation(50, 0) != 0 {
		t.Error("expected zero deviation for zero baseline")
	}
}

func TestNewHRVSample(t *testing.T) {
	s := NewHRVSample("2025-03-01", 70, 65, 60, 7.5)

	if s.RecoveryScore != RecoveryOptimal {
		t.Errorf("RecoveryScore = %s, want optimal", s.RecoveryScore)
	}
	if s.Deviation <= 0 {
		t.Errorf("expected positive deviation, got %v", s.Deviation)
	}
}

func TestRecommendIntensity(t *testing.T) {
	tests := []struct {
		recovery Recovery
		want     string
	}{
		{RecoveryOptimal, "High"},
		{RecoveryGood, "Moderate-High"},
		{RecoveryModerate, "Moderate"},
		{RecoveryPoor, "Light"},
	}

	for _, tt := range tests {
		t.Run(string(tt.recovery), func(t *testing.T) {
			if got := RecommendIntensity(tt.recovery).Level; got != tt.want {
				t.Errorf("RecommendIntensity(%s) = %s, want %s", tt.recovery, got, tt.want)
			}
		})
	}
}

func TestRecoveryIsValid(t *testing.T) {
	if !RecoveryPoor.IsValid() {
		t.Error("expected poor to be valid")
	}
	if Recovery("excellent").IsValid() {
		t.Error("expected excellent to be invalid")
	}
}
