// ABOUTME: CLI command showing the consecutive-day workout streak.
// ABOUTME: Also lists the most recent workouts for context.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const streakRecentCount = 3

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your workout streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		streak, err := repo.GetCurrentStreak()
		if err != nil {
			return fmt.Errorf("failed to get streak: %w", err)
		}

		if streak == 0 {
			fmt.Println("No streak yet. Log a workout to start one.")
		} else {
			color.New(color.FgGreen, color.Bold).Printf("%d day streak\n", streak)
		}

		recent, err := repo.GetRecentWorkouts(streakRecentCount)
		if err != nil {
			return fmt.Errorf("failed to get recent workouts: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent workouts:")
			printWorkouts(recent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
