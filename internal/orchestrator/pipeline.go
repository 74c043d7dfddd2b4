// ABOUTME: The daily workout pipeline: HRV analysis, then medical parsing, then workout generation.
// ABOUTME: Steps run strictly in order because each feeds its text into the next.
package orchestrator

import (
	"context"

	"github.com/harperreed/healthflow/internal/models"
)

// Pipeline defaults used when the profile leaves a figure unset.
const (
	DefaultRestingHR = 60.0
	DefaultSleep     = 7.0
)

// DailyParams is everything the pipeline needs.
type DailyParams struct {
	HRVMs             float64  `json:"hrv_ms"`
	BaselineHRV       float64  `json:"baseline_hrv"`
	RestingHR         float64  `json:"resting_hr"`
	BaselineRestingHR float64  `json:"baseline_resting_hr"`
	SleepHours        float64  `json:"sleep_hours"`
	BaselineSleep     float64  `json:"baseline_sleep"`
	Surgery           string   `json:"surgery"`
	Restrictions      []string `json:"restrictions"`
	Medications       []string `json:"medications"`
	Equipment         []string `json:"equipment"`
	TimeAvailable     int      `json:"time_available"`
	Goals             []string `json:"goals,omitempty"`
}

// DailyResult holds each step's result for independent inspection.
type DailyResult struct {
	HRVAnalysis    HRVAnalysis    `json:"hrv_analysis"`
	MedicalProfile MedicalProfile `json:"medical_profile"`
	Workout        Workout        `json:"workout"`
}

// Succeeded reports whether all three steps succeeded.
func (r DailyResult) Succeeded() bool {
	return r.HRVAnalysis.Success && r.MedicalProfile.Success && r.Workout.Success
}

// GenerateDailyWorkout runs the three-step pipeline. A failed step's
// fallback text is still forwarded as context to the workout step.
func (c *Client) GenerateDailyWorkout(ctx context.Context, p DailyParams) DailyResult {
	hrv := c.AnalyzeHRV(ctx, HRVRequest{
		HRVMs:             p.HRVMs,
		BaselineHRV:       p.BaselineHRV,
		RestingHR:         p.RestingHR,
		BaselineRestingHR: p.BaselineRestingHR,
		SleepHours:        p.SleepHours,
		BaselineSleep:     p.BaselineSleep,
	})

	medical := c.ParseMedicalProfile(ctx, MedicalRequest{
		Surgery:      p.Surgery,
		Restrictions: nonNil(p.Restrictions),
		Medications:  nonNil(p.Medications),
	})

	// A failed stage still passes its fallback text on as context.
	if !hrv.Success {
		c.log.Warn("forwarding failed stage text", "stage", "analyze_hrv")
	}
	if !medical.Success {
		c.log.Warn("forwarding failed stage text", "stage", "parse_medical_profile")
	}

	workout := c.GenerateWorkout(ctx, WorkoutRequest{
		HRVAnalysis:        hrv.Response,
		MedicalConstraints: medical.Response,
		Equipment:          nonNil(p.Equipment),
		TimeAvailable:      p.TimeAvailable,
		Goals:              p.Goals,
	})

	return DailyResult{
		HRVAnalysis:    hrv,
		MedicalProfile: medical,
		Workout:        workout,
	}
}

// DailyParamsFrom assembles pipeline parameters from the stored profile
// and today's sample. Missing baselines fall back to 65 ms HRV, 60 bpm
// and 7 h sleep; today's resting HR and sleep fall back to the baselines.
func DailyParamsFrom(profile *models.UserProfile, today *models.HRVSample) DailyParams {
	if profile == nil {
		profile = models.NewUserProfile()
	}

	baselineRHR := valueOr(profile.BaselineRestingHR, DefaultRestingHR)
	baselineSleep := valueOr(profile.BaselineSleep, DefaultSleep)

	p := DailyParams{
		BaselineHRV:       profile.GetBaselineHRV(),
		RestingHR:         baselineRHR,
		BaselineRestingHR: baselineRHR,
		SleepHours:        baselineSleep,
		BaselineSleep:     baselineSleep,
		Surgery:           profile.SurgeryLabel(),
		Restrictions:      nonNil(profile.Restrictions),
		Medications:       nonNil(profile.Medications),
		Equipment:         nonNil(profile.Equipment),
		TimeAvailable:     profile.GetTimeAvailable(),
		Goals:             profile.Goals,
	}
	p.HRVMs = p.BaselineHRV

	if today != nil {
		p.HRVMs = today.HRV
		if today.RestingHR > 0 {
			p.RestingHR = today.RestingHR
		}
		if today.Sleep > 0 {
			p.SleepHours = today.Sleep
		}
	}
	return p
}

func valueOr(v *float64, def float64) float64 {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
