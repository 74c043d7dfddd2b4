// ABOUTME: Export and import functionality for healthflow data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/healthflow/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for healthflow data.
type ExportData struct {
	Version         string                  `json:"version" yaml:"version"`
	ExportedAt      time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool            string                  `json:"tool" yaml:"tool"`
	Profile         *models.UserProfile     `json:"profile,omitempty" yaml:"profile,omitempty"`
	HRV             []*models.HRVSample     `json:"hrv" yaml:"hrv"`
	Workouts        []*models.WorkoutRecord `json:"workouts" yaml:"workouts"`
	CurrentStreak   int                     `json:"current_streak" yaml:"current_streak"`
	LastWorkoutDate string                  `json:"last_workout_date,omitempty" yaml:"last_workout_date,omitempty"`
}

// GetAllData retrieves all data for export.
func (s *Store) GetAllData() (*ExportData, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}
	hrv, err := s.GetHRVHistory(0)
	if err != nil {
		return nil, err
	}
	workouts, err := s.GetWorkoutHistory(0)
	if err != nil {
		return nil, err
	}
	streak, err := s.GetCurrentStreak()
	if err != nil {
		return nil, err
	}
	lastDate, err := s.lastWorkoutDate()
	if err != nil {
		return nil, fmt.Errorf("get last workout date: %w", err)
	}

	return &ExportData{
		Version:         "1.0",
		ExportedAt:      time.Now(),
		Tool:            "healthflow",
		Profile:         profile,
		HRV:             hrv,
		Workouts:        workouts,
		CurrentStreak:   streak,
		LastWorkoutDate: lastDate,
	}, nil
}

// ImportData replaces stored data with the contents of an export.
// HRV samples keep the first one seen per date, and both histories are
// capped. The streak is restored from the export rather than recomputed,
// and a missing last workout date clears the stored one.
func (s *Store) ImportData(data *ExportData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data.Profile != nil {
		if err := s.writeJSON(KeyUserProfile, data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if err := s.writeJSON(KeyHRVHistory, headOf(uniqueByDate(data.HRV), MaxHRVHistory)); err != nil {
		return fmt.Errorf("import hrv: %w", err)
	}
	if err := s.writeJSON(KeyWorkoutHistory, headOf(data.Workouts, MaxWorkoutHistory)); err != nil {
		return fmt.Errorf("import workouts: %w", err)
	}
	if err := s.writeJSON(KeyCurrentStreak, data.CurrentStreak); err != nil {
		return fmt.Errorf("import streak: %w", err)
	}
	if data.LastWorkoutDate == "" {
		if err := s.kv.Delete(KeyLastWorkoutDate); err != nil {
			return fmt.Errorf("import streak: %w", err)
		}
		return nil
	}
	if err := s.writeJSON(KeyLastWorkoutDate, data.LastWorkoutDate); err != nil {
		return fmt.Errorf("import streak: %w", err)
	}
	return nil
}

// uniqueByDate drops nil samples and any sample whose date was already seen.
func uniqueByDate(samples []*models.HRVSample) []*models.HRVSample {
	seen := make(map[string]bool, len(samples))
	out := make([]*models.HRVSample, 0, len(samples))
	for _, h := range samples {
		if h == nil || seen[h.Date] {
			continue
		}
		seen[h.Date] = true
		out = append(out, h)
	}
	return out
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (s *Store) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(&data)
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version         string                  `yaml:"version"`
		ExportedAt      string                  `yaml:"exported_at"`
		Tool            string                  `yaml:"tool"`
		Profile         *models.UserProfile     `yaml:"profile,omitempty"`
		CurrentStreak   int                     `yaml:"current_streak"`
		LastWorkoutDate string                  `yaml:"last_workout_date,omitempty"`
		HRV             []*models.HRVSample     `yaml:"hrv"`
		Workouts        []*models.WorkoutRecord `yaml:"workouts"`
	}{
		Version:         data.Version,
		ExportedAt:      data.ExportedAt.Format(time.RFC3339),
		Tool:            data.Tool,
		Profile:         data.Profile,
		CurrentStreak:   data.CurrentStreak,
		LastWorkoutDate: data.LastWorkoutDate,
		HRV:             data.HRV,
		Workouts:        data.Workouts,
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports HRV and workout history as Markdown tables.
// A non-nil since drops entries dated before it.
func (s *Store) ExportMarkdown(since *time.Time) (string, error) {
	data, err := s.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# HealthFlow Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Current streak: %d day(s)\n\n", data.CurrentStreak))

	sb.WriteString("## HRV\n\n")
	sb.WriteString("| Date | HRV | Resting HR | Sleep | Recovery | Deviation |\n")
	sb.WriteString("|------|-----|------------|-------|----------|-----------|\n")
	for _, h := range data.HRV {
		if !onOrAfter(h.Date, since) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %.0f ms | %.0f bpm | %.1f h | %s | %+.1f%% |\n",
			h.Date, h.HRV, h.RestingHR, h.Sleep, h.RecoveryScore, h.Deviation))
	}
	sb.WriteString("\n")

	sb.WriteString("## Workouts\n\n")
	sb.WriteString("| Date | Type | Duration | Intensity | Completed |\n")
	sb.WriteString("|------|------|----------|-----------|-----------|\n")
	for _, w := range data.Workouts {
		if !onOrAfter(w.Date, since) {
			continue
		}
		completed := "no"
		if w.Completed {
			completed = "yes"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %s | %s |\n",
			w.Date, w.Type, w.Duration, w.Intensity, completed))
	}

	return sb.String(), nil
}

func onOrAfter(date string, since *time.Time) bool {
	if since == nil {
		return true
	}
	d, err := models.ParseDate(date)
	if err != nil {
		return true
	}
	cutoff := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(cutoff)
}
