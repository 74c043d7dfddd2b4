// ABOUTME: CLI commands for viewing and editing the user profile.
// ABOUTME: Supports show, set, reset, and analyze subcommands.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/orchestrator"
)

var (
	profileSetFlags profileFlags
	profileResetYes bool
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "View or edit your profile",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showProfile()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showProfile()
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass are changed.

List flags (--restriction, --medication, --goal, --equipment) replace the
whole list.

EXAMPLES:

  healthflow profile set --medication warfarin --medication metformin
  healthflow profile set --baseline-hrv 58 --time 45`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireProfile(); err != nil {
			return err
		}
		if err := profileSetFlags.validate(cmd); err != nil {
			return err
		}
		if err := repo.UpdateProfile(func(p *models.UserProfile) {
			profileSetFlags.apply(cmd, p)
		}); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start over",
	Long: `Delete the profile, workout history, HRV history and streak.

This cannot be undone. Export first with 'healthflow export json -o backup.json'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !profileResetYes {
			fmt.Print("Delete profile, workouts and HRV history? [y/N] ")
			reader := bufio.NewReader(cmd.InOrStdin())
			response, err := reader.ReadString('\n')
			if err != nil && response == "" {
				return fmt.Errorf("failed to read response: %w", err)
			}
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Reset canceled.")
				return nil
			}
		}

		if err := repo.ClearAllData(); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
		color.Green("✓ All data deleted")
		return nil
	},
}

var profileAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask the AI backend to interpret your medical profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := requireProfile()
		if err != nil {
			return err
		}

		res := orch.ParseMedicalProfile(cmd.Context(), orchestrator.MedicalRequest{
			Surgery:      p.SurgeryLabel(),
			Restrictions: p.Restrictions,
			Medications:  p.Medications,
		})
		if !res.Success {
			color.Yellow("⚠ %s", res.Response)
			return nil
		}
		printSections(res.Response)
		return nil
	},
}

func showProfile() error {
	p, err := repo.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		fmt.Println("No profile found. Run 'healthflow onboard' to get started.")
		return nil
	}

	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	name := "-"
	if p.Name != nil {
		name = *p.Name
	}
	bold.Printf("%s ", name)
	fmt.Println(faint.Sprint(p.ID.String()[:8]))
	if p.Age != nil {
		fmt.Printf("  Age:           %d\n", *p.Age)
	}
	fmt.Printf("  Surgery:       %s\n", p.SurgeryLabel())
	if p.Surgery != nil {
		if p.Surgery.Date != "" {
			fmt.Printf("  Surgery date:  %s\n", p.Surgery.Date)
		}
		fmt.Printf("  Weeks post-op: %d\n", p.Surgery.WeeksPostOp)
	}
	fmt.Printf("  Restrictions:  %s\n", listOrNone(p.Restrictions))
	fmt.Printf("  Medications:   %s\n", listOrNone(p.Medications))
	fmt.Printf("  Goals:         %s\n", listOrNone(p.Goals))
	fmt.Printf("  Equipment:     %s\n", listOrNone(p.Equipment))
	fmt.Printf("  Time:          %d min\n", p.GetTimeAvailable())
	fmt.Printf("  Baseline HRV:  %.0f ms\n", p.GetBaselineHRV())
	if p.BaselineRestingHR != nil {
		fmt.Printf("  Baseline RHR:  %.0f bpm\n", *p.BaselineRestingHR)
	}
	if p.BaselineSleep != nil {
		fmt.Printf("  Baseline sleep: %.1f h\n", *p.BaselineSleep)
	}
	fmt.Printf("  Created:       %s\n", faint.Sprint(p.CreatedAt.Format("2006-01-02 15:04")))
	return nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func init() {
	profileSetFlags.register(profileSetCmd)
	profileResetCmd.Flags().BoolVarP(&profileResetYes, "yes", "y", false, "skip confirmation prompt")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileResetCmd)
	profileCmd.AddCommand(profileAnalyzeCmd)
	rootCmd.AddCommand(profileCmd)
}
