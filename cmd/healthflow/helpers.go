// ABOUTME: Shared helpers for healthflow CLI commands.
// ABOUTME: Profile lookup, today's HRV, recovery colors and text formatting.
package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/sections"
	"github.com/harperreed/healthflow/internal/storage"
)

var errNoProfile = errors.New("no profile found; run 'healthflow onboard' first")

// nowFunc is swapped in tests.
var nowFunc = time.Now

func requireProfile() (*models.UserProfile, error) {
	p, err := repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, errNoProfile
	}
	return p, nil
}

// ensureTodayHRV returns today's sample, simulating and saving one from
// the profile baseline when none is stored.
func ensureTodayHRV() (*models.HRVSample, bool, error) {
	now := nowFunc()
	sample, err := repo.GetTodayHRV(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get today's hrv: %w", err)
	}
	if sample != nil {
		return sample, false, nil
	}

	baseline := models.DefaultBaselineHRV
	if p, err := repo.GetProfile(); err == nil && p != nil {
		baseline = p.GetBaselineHRV()
	}
	sample = storage.GenerateSimulatedHRV(baseline, now, nil)
	if err := repo.SaveHRVSample(sample); err != nil {
		return nil, false, fmt.Errorf("failed to save simulated hrv: %w", err)
	}
	return sample, true, nil
}

func recoveryColor(r models.Recovery) *color.Color {
	switch r {
	case models.RecoveryOptimal:
		return color.New(color.FgGreen, color.Bold)
	case models.RecoveryGood:
		return color.New(color.FgGreen)
	case models.RecoveryModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printRecovery(s *models.HRVSample, simulated bool) {
	intensity := models.RecommendIntensity(s.RecoveryScore)
	rc := recoveryColor(s.RecoveryScore)
	faint := color.New(color.Faint)

	fmt.Printf("Recovery: %s", rc.Sprint(strings.ToUpper(string(s.RecoveryScore))))
	if simulated {
		fmt.Printf(" %s", faint.Sprint("(simulated)"))
	}
	fmt.Println()
	fmt.Printf("  HRV:        %.0f ms (%+.1f%% vs baseline)\n", s.HRV, s.Deviation)
	fmt.Printf("  Resting HR: %.0f bpm\n", s.RestingHR)
	fmt.Printf("  Sleep:      %.1f h\n", s.Sleep)
	fmt.Printf("  Intensity:  %s %s\n", rc.Sprint(intensity.Level), faint.Sprint("- "+intensity.Description))
}

func printSections(text string) {
	bold := color.New(color.Bold)
	for _, s := range sections.Parse(text) {
		bold.Println(s.Title)
		for _, line := range strings.Split(s.Content, "\n") {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
