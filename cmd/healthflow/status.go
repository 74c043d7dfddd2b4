// ABOUTME: CLI command reporting configuration, storage and AI backend health.
// ABOUTME: Useful when 'plan' falls back because the backend is unreachable.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/config"
)

const statusHealthTimeout = 5 * time.Second

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, storage and backend health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		fmt.Println("Configuration:")
		fmt.Printf("  Config file: %s\n", faint.Sprint(config.GetConfigPath()))
		fmt.Printf("  Backend:     %s\n", cfg.GetBackend())
		fmt.Printf("  Data dir:    %s\n", cfg.GetDataDir())
		fmt.Printf("  AI backend:  %s\n", orch.BaseURL())
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), statusHealthTimeout)
		defer cancel()
		if err := orch.Health(ctx); err != nil {
			fmt.Printf("AI backend: %s %s\n", color.RedString("unreachable"), faint.Sprint(err.Error()))
		} else {
			fmt.Printf("AI backend: %s\n", color.GreenString("ok"))
		}
		fmt.Println()

		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		workouts, err := repo.GetWorkoutHistory(0)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		samples, err := repo.GetHRVHistory(0)
		if err != nil {
			return fmt.Errorf("failed to list hrv: %w", err)
		}
		streak, err := repo.GetCurrentStreak()
		if err != nil {
			return fmt.Errorf("failed to get streak: %w", err)
		}

		fmt.Println("Data:")
		if profile == nil {
			fmt.Printf("  Profile:  %s\n", color.YellowString("none (run 'healthflow onboard')"))
		} else {
			fmt.Printf("  Profile:  %s\n", faint.Sprint(profile.ID.String()[:8]))
		}
		fmt.Printf("  Workouts: %d\n", len(workouts))
		fmt.Printf("  HRV:      %d reading(s)\n", len(samples))
		fmt.Printf("  Streak:   %d day(s)\n", streak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
