// ABOUTME: CLI command checking a meal against medication interactions.
// ABOUTME: Combines the built-in interaction table with the AI backend's analysis.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/interactions"
	"github.com/harperreed/healthflow/internal/orchestrator"
)

var nutritionMedications []string

var nutritionCmd = &cobra.Command{
	Use:     "nutrition <food>...",
	Aliases: []string{"meal"},
	Short:   "Check a meal against your medications",
	Long: `Check foods against your medications.

Foods may be given as separate arguments or one comma-separated string.
Medications come from your profile unless --medication is passed.

Known interactions (for example warfarin with leafy greens, or statins with
grapefruit) are checked locally; the AI backend adds a broader analysis when
it is reachable.

EXAMPLES:

  healthflow nutrition "spinach salad, grapefruit juice"
  healthflow nutrition kale toast --medication warfarin`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := interactions.SplitMeal(strings.Join(args, ","))
		if len(foods) == 0 {
			return fmt.Errorf("no foods given")
		}

		meds := nutritionMedications
		if len(meds) == 0 {
			p, err := repo.GetProfile()
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}
			if p != nil {
				meds = p.Medications
			}
		}
		if len(meds) == 0 {
			color.Yellow("⚠ No medications on file; only general advice is available.")
		}

		found := interactions.Check(meds, foods)
		if len(found) == 0 {
			color.Green("✓ No known interactions")
		} else {
			for _, in := range found {
				sev := color.New(color.FgYellow)
				if in.Severity == interactions.SeverityHigh {
					sev = color.New(color.FgRed, color.Bold)
				}
				fmt.Printf("%s %s + %s\n", sev.Sprintf("[%s]", in.Severity), in.Medication, in.Food)
				fmt.Printf("  %s\n", in.Message)
			}
		}
		fmt.Println()

		res := orch.CheckNutrition(cmd.Context(), orchestrator.NutritionRequest{
			Medications: meds,
			RecentMeals: foods,
		})
		if !res.Success {
			fmt.Println(color.New(color.Faint).Sprint(res.Response))
			return nil
		}
		printSections(res.Response)
		return nil
	},
}

func init() {
	nutritionCmd.Flags().StringSliceVarP(&nutritionMedications, "medication", "m", nil, "medication to check (repeatable, default from profile)")
	rootCmd.AddCommand(nutritionCmd)
}
