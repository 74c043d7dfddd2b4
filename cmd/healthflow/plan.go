// ABOUTME: CLI command generating today's workout plan.
// ABOUTME: Runs HRV analysis, medical parsing and workout generation against the AI backend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/orchestrator"
)

const plannedWorkoutType = "daily plan"

var (
	planVerbose bool
	planLog     bool
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"today"},
	Short:   "Generate today's workout",
	Long: `Generate today's workout from your recovery and medical profile.

The AI backend runs three steps in order: it analyzes today's HRV, parses
your surgery, restrictions and medications into constraints, then writes a
workout that fits both within your available time and equipment.

If today's HRV was not logged it is simulated from your baseline first.

OPTIONS:

  --verbose, -v   Also print the HRV and medical analyses
  --log           Record the generated plan as today's completed workout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := requireProfile()
		if err != nil {
			return err
		}
		sample, simulated, err := ensureTodayHRV()
		if err != nil {
			return err
		}

		printRecovery(sample, simulated)
		fmt.Println()

		result := orch.GenerateDailyWorkout(cmd.Context(), orchestrator.DailyParamsFrom(profile, sample))

		if planVerbose {
			printStage("HRV Analysis", result.HRVAnalysis.Result)
			printStage("Medical Constraints", result.MedicalProfile.Result)
		}

		if !result.Workout.Success {
			color.Red("✗ Could not generate a workout")
			printStatus("HRV analysis", result.HRVAnalysis.Success)
			printStatus("Medical parsing", result.MedicalProfile.Success)
			printStatus("Workout generation", result.Workout.Success)
			fmt.Println()
			fmt.Printf("Is the AI backend running at %s? Check with 'healthflow status'.\n", orch.BaseURL())
			return nil
		}

		color.New(color.Bold, color.FgCyan).Println("Today's Workout")
		fmt.Println()
		printSections(result.Workout.Response)

		if planLog {
			intensity := models.RecommendIntensity(sample.RecoveryScore)
			w := models.NewWorkoutRecord(plannedWorkoutType).
				WithDate(models.DateOf(nowFunc())).
				WithDuration(profile.GetTimeAvailable()).
				WithPlan(result.Workout.Response, intensity.Level)
			if err := repo.SaveWorkout(w); err != nil {
				return fmt.Errorf("failed to save workout: %w", err)
			}
			streak, err := repo.GetCurrentStreak()
			if err != nil {
				return fmt.Errorf("failed to get streak: %w", err)
			}
			color.Green("✓ Logged today's workout (streak: %d day(s))", streak)
		}
		return nil
	},
}

func printStage(title string, r orchestrator.Result) {
	color.New(color.Bold, color.FgCyan).Println(title)
	fmt.Println()
	if !r.Success {
		color.Yellow("⚠ %s", r.Response)
		fmt.Println()
		return
	}
	printSections(r.Response)
}

func printStatus(step string, ok bool) {
	if ok {
		fmt.Printf("  %s %s\n", color.GreenString("✓"), step)
		return
	}
	fmt.Printf("  %s %s\n", color.RedString("✗"), step)
}

func init() {
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "print the HRV and medical analyses")
	planCmd.Flags().BoolVar(&planLog, "log", false, "record the plan as today's completed workout")
	rootCmd.AddCommand(planCmd)
}
