// ABOUTME: Request and response shapes for the AI backend endpoints.
// ABOUTME: Every response embeds Result, whose Success flag callers branch on.
package orchestrator

import (
	"encoding/json"

	"github.com/harperreed/healthflow/internal/models"
)

// Fallback texts returned when a call fails.
const (
	FallbackHRV       = "Unable to analyze HRV at this time. Using cached data."
	FallbackMedical   = "Unable to parse medical profile. Please try again."
	FallbackWorkout   = "Unable to generate workout. Backend may be offline."
	FallbackNutrition = "Unable to check nutrition interactions. Backend may be offline."
)

// Result is the part every backend response shares.
type Result struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Failed builds an unsuccessful result carrying the fallback text.
func Failed(fallback string) Result {
	return Result{Success: false, Response: fallback}
}

type HRVRequest struct {
	HRVMs             float64 `json:"hrv_ms"`
	BaselineHRV       float64 `json:"baseline_hrv"`
	RestingHR         float64 `json:"resting_hr"`
	BaselineRestingHR float64 `json:"baseline_resting_hr"`
	SleepHours        float64 `json:"sleep_hours"`
	BaselineSleep     float64 `json:"baseline_sleep"`
}

type HRVAnalysis struct {
	Result
	RecoveryScore models.Recovery `json:"recovery_score,omitempty"`
}

type MedicalRequest struct {
	Surgery      string   `json:"surgery"`
	Restrictions []string `json:"restrictions"`
	Medications  []string `json:"medications"`
}

// MedicalProfile carries the backend's parsed constraints untouched; their
// shape is not part of the contract.
type MedicalProfile struct {
	Result
	ParsedConstraints json.RawMessage `json:"parsed_constraints,omitempty"`
}

type WorkoutRequest struct {
	HRVAnalysis        string   `json:"hrv_analysis"`
	MedicalConstraints string   `json:"medical_constraints"`
	Equipment          []string `json:"equipment"`
	TimeAvailable      int      `json:"time_available"`
	Goals              []string `json:"goals,omitempty"`
}

type Workout struct {
	Result
	WorkoutPlan json.RawMessage `json:"workout_plan,omitempty"`
}

type NutritionRequest struct {
	Medications []string `json:"medications"`
	RecentMeals []string `json:"recent_meals"`
}

type Nutrition struct {
	Result
	Interactions json.RawMessage `json:"interactions,omitempty"`
}
