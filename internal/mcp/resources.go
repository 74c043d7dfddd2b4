// ABOUTME: MCP resource implementations for healthflow.
// ABOUTME: Provides healthflow://today and healthflow://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/models"
)

const (
	todayURI   = "healthflow://today"
	summaryURI = "healthflow://summary"
)

func (s *Server) registerResources() {
	// healthflow://today - Today's HRV, intensity and workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Recovery",
		Description: "Today's HRV reading, recommended intensity and logged workouts",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// healthflow://summary - Profile, streak, recent workouts, HRV trend and progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Recovery Summary",
		Description: "Profile, streak, recent workouts, 7-day HRV trend and 7/30-day progress",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.now()
	today := models.DateOf(now)

	sample, err := s.repo.GetTodayHRV(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's hrv: %w", err)
	}

	workouts, err := s.repo.GetWorkoutHistory(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	todayWorkouts := []*models.WorkoutRecord{}
	for _, w := range workouts {
		if w.Date == today {
			todayWorkouts = append(todayWorkouts, w)
		}
	}

	streak, err := s.repo.GetCurrentStreak()
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	result := map[string]any{
		"date":     today,
		"hrv":      sample,
		"workouts": todayWorkouts,
		"streak":   streak,
	}
	if sample != nil {
		result["intensity"] = models.RecommendIntensity(sample.RecoveryScore)
	}

	return jsonResource(todayURI, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	workouts, err := s.repo.GetRecentWorkouts(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	trend, err := s.repo.GetHRVTrend(7)
	if err != nil {
		return nil, fmt.Errorf("failed to get hrv trend: %w", err)
	}

	streak, err := s.repo.GetCurrentStreak()
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	week, err := s.repo.Progress(models.ProgressWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	month, err := s.repo.Progress(models.ProgressMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	var avgHRV float64
	for _, h := range trend {
		avgHRV += h.HRV
	}
	if len(trend) > 0 {
		avgHRV /= float64(len(trend))
	}

	result := map[string]any{
		"generated_at":    s.now().Format(time.RFC3339),
		"profile":         profile,
		"streak":          streak,
		"recent_workouts": workouts,
		"hrv_trend":       trend,
		"progress_7d":     week,
		"progress_30d":    month,
		"summary": map[string]any{
			"recent_workout_count": len(workouts),
			"trend_days":           len(trend),
			"average_hrv":          avgHRV,
		},
	}

	return jsonResource(summaryURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
