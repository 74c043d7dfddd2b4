// ABOUTME: HRV sample model with recovery classification and intensity advice.
// ABOUTME: Deviation from baseline drives the optimal/good/moderate/poor bands.
package models

// Recovery is the recovery classification derived from HRV deviation.
type Recovery string

const (
	RecoveryOptimal  Recovery = "optimal"
	RecoveryGood     Recovery = "good"
	RecoveryModerate Recovery = "moderate"
	RecoveryPoor     Recovery = "poor"
)

// DefaultBaselineHRV is used when a profile carries no HRV baseline.
const DefaultBaselineHRV = 65.0

// HRVSample is one day's recovery reading. Date is the unique key.
type HRVSample struct {
	Date          string   `json:"date" yaml:"date"`
	HRV           float64  `json:"hrv" yaml:"hrv"`
	RestingHR     float64  `json:"restingHR" yaml:"resting_hr"`
	Sleep         float64  `json:"sleep" yaml:"sleep"`
	RecoveryScore Recovery `json:"recoveryScore" yaml:"recovery_score"`
	Deviation     float64  `json:"deviation" yaml:"deviation"`
}

// NewHRVSample builds a sample for date, deriving deviation and
// classification from the baseline.
func NewHRVSample(date string, hrv, baseline, restingHR, sleep float64) *HRVSample {
	dev := Deviation(hrv, baseline)
	return &HRVSample{
		Date:          date,
		HRV:           hrv,
		RestingHR:     restingHR,
		Sleep:         sleep,
		RecoveryScore: Classify(dev),
		Deviation:     dev,
	}
}

// Deviation returns the percent difference of hrv from baseline.
func Deviation(hrv, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (hrv - baseline) / baseline * 100
}

// Classify maps a deviation percentage onto a recovery band.
func Classify(deviation float64) Recovery {
	switch {
	case deviation > -5:
		return RecoveryOptimal
	case deviation > -15:
		return RecoveryGood
	case deviation > -25:
		return RecoveryModerate
	default:
		return RecoveryPoor
	}
}

// IsValid reports whether r is one of the four known bands.
func (r Recovery) IsValid() bool {
	switch r {
	case RecoveryOptimal, RecoveryGood, RecoveryModerate, RecoveryPoor:
		return true
	}
	return false
}

// Intensity is a training recommendation for a recovery band.
type Intensity struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// RecommendIntensity returns the training intensity suggested for r.
func RecommendIntensity(r Recovery) Intensity {
	switch r {
	case RecoveryOptimal:
		return Intensity{Level: "High", Description: "Push yourself today!"}
	case RecoveryGood:
		return Intensity{Level: "Moderate-High", Description: "Great day for training"}
	case RecoveryModerate:
		return Intensity{Level: "Moderate", Description: "Listen to your body"}
	default:
		return Intensity{Level: "Light", Description: "Focus on recovery"}
	}
}
