// ABOUTME: Progress statistics over the newest HRV samples and workouts.
// ABOUTME: Average HRV, recovery distribution, workouts per type and total minutes.
package models

import "math"

// Progress windows offered to users.
const (
	ProgressWeek  = 7
	ProgressMonth = 30
)

// Progress aggregates a window of history.
type Progress struct {
	Days                 int              `json:"days" yaml:"days"`
	HRVSamples           int              `json:"hrv_samples" yaml:"hrv_samples"`
	AverageHRV           int              `json:"average_hrv" yaml:"average_hrv"`
	RecoveryDistribution map[Recovery]int `json:"recovery_distribution" yaml:"recovery_distribution"`
	MostCommonRecovery   Recovery         `json:"most_common_recovery,omitempty" yaml:"most_common_recovery,omitempty"`
	Workouts             int              `json:"workouts" yaml:"workouts"`
	WorkoutsByType       map[string]int   `json:"workouts_by_type" yaml:"workouts_by_type"`
	TotalMinutes         int              `json:"total_minutes" yaml:"total_minutes"`
}

// recoveryOrder breaks ties when picking the most common band.
var recoveryOrder = []Recovery{RecoveryOptimal, RecoveryGood, RecoveryModerate, RecoveryPoor}

// ComputeProgress summarizes the given samples and workouts, which callers
// have already limited to the newest days entries of each history.
// Samples with an unknown recovery band count toward the average only.
func ComputeProgress(days int, samples []*HRVSample, workouts []*WorkoutRecord) *Progress {
	p := &Progress{
		Days:                 days,
		RecoveryDistribution: make(map[Recovery]int, len(recoveryOrder)),
		WorkoutsByType:       map[string]int{},
	}
	for _, r := range recoveryOrder {
		p.RecoveryDistribution[r] = 0
	}

	var sum float64
	for _, s := range samples {
		if s == nil {
			continue
		}
		p.HRVSamples++
		sum += s.HRV
		if s.RecoveryScore.IsValid() {
			p.RecoveryDistribution[s.RecoveryScore]++
		}
	}
	if p.HRVSamples > 0 {
		p.AverageHRV = int(math.Round(sum / float64(p.HRVSamples)))
	}

	best := 0
	for _, r := range recoveryOrder {
		if n := p.RecoveryDistribution[r]; n > best {
			best = n
			p.MostCommonRecovery = r
		}
	}

	for _, w := range workouts {
		if w == nil {
			continue
		}
		p.Workouts++
		p.WorkoutsByType[w.Type]++
		p.TotalMinutes += w.Duration
	}
	return p
}
