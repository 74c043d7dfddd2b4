// ABOUTME: CLI command summarizing recovery and training over a 7 or 30 day window.
// ABOUTME: Shows average HRV, recovery distribution, workouts per type and total minutes.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
)

var progressDays int

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Summarize recovery and training",
	Long: `Summarize the newest 7 or 30 days of HRV readings and workouts.

Examples:
  healthflow progress
  healthflow progress --days 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressDays != models.ProgressWeek && progressDays != models.ProgressMonth {
			return fmt.Errorf("invalid --days %d (use %d or %d)", progressDays, models.ProgressWeek, models.ProgressMonth)
		}

		p, err := repo.Progress(progressDays)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}
		streak, err := repo.GetCurrentStreak()
		if err != nil {
			return fmt.Errorf("failed to get streak: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Last %d days\n\n", p.Days)
		fmt.Printf("  Streak:        %d day(s)\n", streak)
		fmt.Printf("  Workouts:      %d\n", p.Workouts)
		fmt.Printf("  Total minutes: %d\n", p.TotalMinutes)
		if p.HRVSamples == 0 {
			fmt.Printf("  Average HRV:   %s\n", faint.Sprint("no readings"))
		} else {
			fmt.Printf("  Average HRV:   %d ms over %d reading(s)\n", p.AverageHRV, p.HRVSamples)
		}

		if p.MostCommonRecovery != "" {
			fmt.Println()
			bold.Println("Recovery")
			for _, r := range []models.Recovery{models.RecoveryOptimal, models.RecoveryGood, models.RecoveryModerate, models.RecoveryPoor} {
				fmt.Printf("  %s %d\n", recoveryColor(r).Sprint(padRight(string(r), 10)), p.RecoveryDistribution[r])
			}
			fmt.Printf("  Most common: %s\n", recoveryColor(p.MostCommonRecovery).Sprint(p.MostCommonRecovery))
		}

		if len(p.WorkoutsByType) > 0 {
			fmt.Println()
			bold.Println("Workouts by type")
			types := make([]string, 0, len(p.WorkoutsByType))
			for t := range p.WorkoutsByType {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool {
				if p.WorkoutsByType[types[i]] != p.WorkoutsByType[types[j]] {
					return p.WorkoutsByType[types[i]] > p.WorkoutsByType[types[j]]
				}
				return types[i] < types[j]
			})
			for _, t := range types {
				fmt.Printf("  %s %d\n", padRight(truncate(t, 20), 20), p.WorkoutsByType[t])
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().IntVar(&progressDays, "days", models.ProgressWeek, "window size: 7 or 30")
	rootCmd.AddCommand(progressCmd)
}
