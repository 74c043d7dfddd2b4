// ABOUTME: MCP tool implementations for healthflow.
// ABOUTME: Exposes profile, workouts, HRV, streak, the daily pipeline and nutrition checks.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/interactions"
	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/orchestrator"
	"github.com/harperreed/healthflow/internal/sections"
	"github.com/harperreed/healthflow/internal/storage"
)

var errNoProfile = errors.New("no profile found; run `healthflow onboard` first")

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's recovery profile (surgery, restrictions, medications, baselines)",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a workout and update the daily streak",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today_hrv",
		Description: "Get today's HRV reading with recovery classification and suggested intensity",
	}, s.handleGetTodayHRV)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_hrv",
		Description: "List HRV history newest first, or as an oldest-first trend",
	}, s.handleListHRV)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current consecutive-day workout streak",
	}, s.handleGetStreak)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_daily_workout",
		Description: "Run HRV analysis, medical parsing and workout generation for today",
	}, s.handleGenerateDailyWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_nutrition",
		Description: "Check a meal for medication-food interactions",
	}, s.handleCheckNutrition)
}

// Tool input/output types

type emptyInput struct{}

type logWorkoutInput struct {
	Type      string   `json:"type" jsonschema:"Type of workout (walk, mobility, strength, etc.)"`
	Date      string   `json:"date,omitempty" jsonschema:"Workout date YYYY-MM-DD, defaults to today"`
	Duration  int      `json:"duration,omitempty" jsonschema:"Duration in minutes"`
	Intensity string   `json:"intensity,omitempty" jsonschema:"Intensity level, e.g. Moderate"`
	Exercises []string `json:"exercises,omitempty" jsonschema:"Exercises performed"`
	Skipped   bool     `json:"skipped,omitempty" jsonschema:"True if the workout was planned but not completed"`
}

type logWorkoutOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type todayHRVInput struct {
	Simulate bool `json:"simulate,omitempty" jsonschema:"Generate and store a simulated reading when none exists for today"`
}

type listHRVInput struct {
	Limit int  `json:"limit,omitempty" jsonschema:"Max results (default 20, trend default 7)"`
	Trend bool `json:"trend,omitempty" jsonschema:"Return oldest-first trend instead of newest-first history"`
}

type streakOutput struct {
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

type dailyWorkoutInput struct {
	Simulate bool `json:"simulate,omitempty" jsonschema:"Simulate and store today's HRV when no reading exists"`
}

type nutritionInput struct {
	Meal        string   `json:"meal" jsonschema:"Comma-separated meal description"`
	Medications []string `json:"medications,omitempty" jsonschema:"Medications to check, defaults to the profile's"`
}

// Tool handlers

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, map[string]any{"is_new_user": true, "message": "No profile found."}, nil
	}
	return nil, map[string]any{"is_new_user": false, "profile": p}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	if input.Type == "" {
		return nil, logWorkoutOutput{}, errors.New("workout type is required")
	}

	w := models.NewWorkoutRecord(input.Type).WithDate(models.DateOf(s.now()))
	if input.Date != "" {
		d, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("invalid date: %w", err)
		}
		w.WithDate(models.DateOf(d))
	}
	if input.Duration > 0 {
		w.WithDuration(input.Duration)
	}
	if input.Intensity != "" {
		w.Intensity = input.Intensity
	}
	if len(input.Exercises) > 0 {
		w.WithExercises(input.Exercises...)
	}
	if input.Skipped {
		w.Skipped()
	}

	if err := s.repo.SaveWorkout(w); err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}

	streak, err := s.repo.GetCurrentStreak()
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to get streak: %w", err)
	}

	return nil, logWorkoutOutput{
		ID:      w.ID.String()[:8],
		Date:    w.Date,
		Streak:  streak,
		Message: fmt.Sprintf("Logged %s workout on %s (streak: %d)", w.Type, w.Date, streak),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.repo.GetWorkoutHistory(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}

	return nil, map[string]any{"workouts": workouts, "count": len(workouts)}, nil
}

func (s *Server) handleGetTodayHRV(ctx context.Context, req *mcp.CallToolRequest, input todayHRVInput) (*mcp.CallToolResult, any, error) {
	sample, err := s.todayHRV(input.Simulate)
	if err != nil {
		return nil, nil, err
	}
	if sample == nil {
		return nil, map[string]any{"message": "No HRV reading for today."}, nil
	}

	return nil, map[string]any{
		"sample":    sample,
		"intensity": models.RecommendIntensity(sample.RecoveryScore),
	}, nil
}

func (s *Server) handleListHRV(ctx context.Context, req *mcp.CallToolRequest, input listHRVInput) (*mcp.CallToolResult, any, error) {
	var (
		samples []*models.HRVSample
		err     error
	)
	if input.Trend {
		samples, err = s.repo.GetHRVTrend(input.Limit)
	} else {
		if input.Limit <= 0 {
			input.Limit = 20
		}
		samples, err = s.repo.GetHRVHistory(input.Limit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list hrv: %w", err)
	}

	if len(samples) == 0 {
		return nil, map[string]any{"message": "No HRV readings found."}, nil
	}

	return nil, map[string]any{"samples": samples, "count": len(samples)}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, streakOutput, error) {
	streak, err := s.repo.GetCurrentStreak()
	if err != nil {
		return nil, streakOutput{}, fmt.Errorf("failed to get streak: %w", err)
	}
	return nil, streakOutput{
		Streak:  streak,
		Message: fmt.Sprintf("Current streak: %d day(s)", streak),
	}, nil
}

func (s *Server) handleGenerateDailyWorkout(ctx context.Context, req *mcp.CallToolRequest, input dailyWorkoutInput) (*mcp.CallToolResult, any, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, nil, errNoProfile
	}

	sample, err := s.todayHRV(input.Simulate)
	if err != nil {
		return nil, nil, err
	}
	if sample == nil {
		return nil, nil, errors.New("no HRV reading for today; log one or pass simulate=true")
	}

	result := s.orch.GenerateDailyWorkout(ctx, orchestrator.DailyParamsFrom(profile, sample))

	return nil, map[string]any{
		"success":          result.Workout.Success,
		"recovery":         sample.RecoveryScore,
		"intensity":        models.RecommendIntensity(sample.RecoveryScore),
		"hrv_analysis":     result.HRVAnalysis.Result,
		"medical_profile":  result.MedicalProfile.Result,
		"workout":          result.Workout.Result,
		"workout_sections": sections.Parse(result.Workout.Response),
	}, nil
}

func (s *Server) handleCheckNutrition(ctx context.Context, req *mcp.CallToolRequest, input nutritionInput) (*mcp.CallToolResult, any, error) {
	if input.Meal == "" {
		return nil, nil, errors.New("meal is required")
	}

	meds := input.Medications
	if len(meds) == 0 {
		profile, err := s.repo.GetProfile()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get profile: %w", err)
		}
		if profile != nil {
			meds = profile.Medications
		}
	}

	foods := interactions.SplitMeal(input.Meal)
	local := interactions.Check(meds, foods)
	backend := s.orch.CheckNutrition(ctx, orchestrator.NutritionRequest{
		Medications: nonNil(meds),
		RecentMeals: nonNil(foods),
	})

	return nil, map[string]any{
		"interactions":    local,
		"safe_to_consume": interactions.SafeToConsume(local),
		"analysis":        backend.Result,
	}, nil
}

// todayHRV returns today's stored sample, simulating and storing one when
// simulate is set and none exists.
func (s *Server) todayHRV(simulate bool) (*models.HRVSample, error) {
	now := s.now()
	sample, err := s.repo.GetTodayHRV(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's hrv: %w", err)
	}
	if sample != nil || !simulate {
		return sample, nil
	}

	baseline := models.DefaultBaselineHRV
	if p, err := s.repo.GetProfile(); err == nil && p != nil {
		baseline = p.GetBaselineHRV()
	}

	sample = storage.GenerateSimulatedHRV(baseline, now, nil)
	if err := s.repo.SaveHRVSample(sample); err != nil {
		return nil, fmt.Errorf("failed to save simulated hrv: %w", err)
	}
	return sample, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
