// ABOUTME: Simulated HRV readings for users without a wearable.
// ABOUTME: Pure function of baseline, clock and random source; never persists.
package storage

import (
	"math"
	"math/rand"
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// Bounds for simulated readings.
const (
	SimulatedHRVMin = 45.0
	SimulatedHRVMax = 85.0
)

// GenerateSimulatedHRV produces a sample dated on now's calendar day.
// HRV is baseline ±10 ms clamped to [45, 85] and rounded to a whole ms,
// resting HR is 58-68 bpm and sleep is 6.5-8.5 h at one decimal.
// A non-positive baseline uses models.DefaultBaselineHRV. A nil rng uses
// a time-seeded source.
func GenerateSimulatedHRV(baseline float64, now time.Time, rng *rand.Rand) *models.HRVSample {
	if baseline <= 0 {
		baseline = models.DefaultBaselineHRV
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	variation := (rng.Float64() - 0.5) * 20
	hrv := math.Round(math.Max(SimulatedHRVMin, math.Min(SimulatedHRVMax, baseline+variation)))
	restingHR := math.Round(58 + rng.Float64()*10)
	sleep := math.Round((6.5+rng.Float64()*2)*10) / 10

	return models.NewHRVSample(models.DateOf(now), hrv, baseline, restingHR, sleep)
}
