// ABOUTME: CLI commands for logging and listing workouts.
// ABOUTME: Completed workouts advance the daily streak; skipped ones do not.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
)

var (
	workoutDuration  int
	workoutDate      string
	workoutIntensity string
	workoutExercises []string
	workoutSkipped   bool
	workoutLimit     int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and list workouts",
	Long: `Log workouts and review your history.

'healthflow plan --log' records the generated plan for you; use
'healthflow workout log' for anything you did on your own.

COMMANDS:

  log      Record a workout
  list     List recent workouts

The workout type is freeform: walk, bike, pt, strength, yoga, swim, etc.`,
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <type>",
	Short: "Record a workout",
	Long: `Record a workout.

Examples:
  healthflow workout log walk --duration 30
  healthflow workout log pt -d 45 -e "quad sets" -e "heel slides"
  healthflow workout log bike --date 2025-03-04 --intensity Moderate
  healthflow workout log strength --skipped`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutDuration < 0 {
			return errors.New("duration cannot be negative")
		}

		w := models.NewWorkoutRecord(args[0]).WithDate(models.DateOf(nowFunc()))
		if workoutDate != "" {
			if _, err := models.ParseDate(workoutDate); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", workoutDate)
			}
			w.WithDate(workoutDate)
		}
		if workoutDuration > 0 {
			w.WithDuration(workoutDuration)
		}
		if workoutIntensity != "" {
			w.Intensity = workoutIntensity
		}
		if len(workoutExercises) > 0 {
			w.WithExercises(workoutExercises...)
		}
		if workoutSkipped {
			w.Skipped()
		}

		if err := repo.SaveWorkout(w); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		if w.Completed {
			color.Green("✓ Logged %s workout", w.Type)
		} else {
			color.Yellow("✓ Logged skipped %s workout", w.Type)
		}
		fmt.Printf("  ID:   %s\n", color.New(color.Faint).Sprint(w.ID.String()[:8]))
		fmt.Printf("  Date: %s\n", w.Date)
		if w.Duration > 0 {
			fmt.Printf("  Duration: %d min\n", w.Duration)
		}

		streak, err := repo.GetCurrentStreak()
		if err != nil {
			return fmt.Errorf("failed to get streak: %w", err)
		}
		fmt.Printf("  Streak: %d day(s)\n", streak)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.GetWorkoutHistory(workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		printWorkouts(workouts)
		return nil
	},
}

func printWorkouts(workouts []*models.WorkoutRecord) {
	faint := color.New(color.Faint)
	for _, w := range workouts {
		duration := ""
		if w.Duration > 0 {
			duration = fmt.Sprintf("%d min", w.Duration)
		}
		status := ""
		if !w.Completed {
			status = color.YellowString("skipped")
		}
		fmt.Printf("%s %s %s %s %s %s\n",
			faint.Sprint(w.ID.String()[:8]),
			faint.Sprint(w.Date),
			padRight(truncate(w.Type, 12), 12),
			padRight(duration, 8),
			padRight(truncate(w.Intensity, 14), 14),
			status)
	}
}

func init() {
	workoutLogCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")
	workoutLogCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD, default today)")
	workoutLogCmd.Flags().StringVarP(&workoutIntensity, "intensity", "i", "", "intensity label, e.g. Moderate")
	workoutLogCmd.Flags().StringSliceVarP(&workoutExercises, "exercise", "e", nil, "exercise performed (repeatable)")
	workoutLogCmd.Flags().BoolVar(&workoutSkipped, "skipped", false, "record the workout as skipped")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results (0 for all)")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}
