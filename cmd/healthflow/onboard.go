// ABOUTME: CLI command for first-run onboarding.
// ABOUTME: Creates the profile with surgery context and baselines, then seeds today's HRV.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
)

// Onboarding baselines used when the user does not supply their own.
const (
	onboardBaselineHRV       = 65.0
	onboardBaselineHR        = 62.0
	onboardBaselineRestingHR = 62.0
	onboardBaselineSleep     = 7.5
)

// profileFlags holds the profile fields shared by onboard and profile set.
type profileFlags struct {
	name          string
	age           int
	surgery       string
	surgeryDate   string
	weeksPostOp   int
	restrictions  []string
	medications   []string
	goals         []string
	equipment     []string
	timeAvailable int
	baselineHRV   float64
	baselineRHR   float64
	baselineSleep float64
}

func (f *profileFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "display name")
	fl.IntVar(&f.age, "age", 0, "age in years")
	fl.StringVar(&f.surgery, "surgery", "", "surgery type, e.g. \"ACL reconstruction\"")
	fl.StringVar(&f.surgeryDate, "surgery-date", "", "surgery date (YYYY-MM-DD)")
	fl.IntVar(&f.weeksPostOp, "weeks-post-op", 0, "weeks since surgery (derived from --surgery-date if omitted)")
	fl.StringSliceVar(&f.restrictions, "restriction", nil, "movement restriction (repeatable)")
	fl.StringSliceVar(&f.medications, "medication", nil, "current medication (repeatable)")
	fl.StringSliceVar(&f.goals, "goal", nil, "training goal (repeatable)")
	fl.StringSliceVar(&f.equipment, "equipment", nil, "available equipment (repeatable)")
	fl.IntVarP(&f.timeAvailable, "time", "t", 0, "minutes available per workout")
	fl.Float64Var(&f.baselineHRV, "baseline-hrv", 0, "baseline HRV in ms")
	fl.Float64Var(&f.baselineRHR, "baseline-rhr", 0, "baseline resting heart rate in bpm")
	fl.Float64Var(&f.baselineSleep, "baseline-sleep", 0, "baseline sleep in hours")
}

// validate checks only the flags set on this invocation.
func (f *profileFlags) validate(cmd *cobra.Command) error {
	fl := cmd.Flags()
	if fl.Changed("age") && f.age <= 0 {
		return errors.New("age must be positive")
	}
	if fl.Changed("surgery-date") {
		if _, err := models.ParseDate(f.surgeryDate); err != nil {
			return fmt.Errorf("invalid surgery date: %s (use YYYY-MM-DD)", f.surgeryDate)
		}
	}
	if fl.Changed("weeks-post-op") && f.weeksPostOp < 0 {
		return errors.New("weeks post-op cannot be negative")
	}
	if fl.Changed("time") && f.timeAvailable <= 0 {
		return errors.New("time available must be positive")
	}
	for name, v := range map[string]float64{
		"baseline-hrv":   f.baselineHRV,
		"baseline-rhr":   f.baselineRHR,
		"baseline-sleep": f.baselineSleep,
	} {
		if fl.Changed(name) && v <= 0 {
			return fmt.Errorf("--%s must be positive", name)
		}
	}
	return nil
}

// apply copies the flags set on this invocation onto p.
func (f *profileFlags) apply(cmd *cobra.Command, p *models.UserProfile) {
	fl := cmd.Flags()
	if fl.Changed("name") {
		p.WithName(f.name)
	}
	if fl.Changed("age") {
		age := f.age
		p.Age = &age
	}

	if fl.Changed("surgery") || fl.Changed("surgery-date") || fl.Changed("weeks-post-op") {
		s := models.Surgery{}
		if p.Surgery != nil {
			s = *p.Surgery
		}
		if fl.Changed("surgery") {
			s.Type = f.surgery
		}
		if fl.Changed("surgery-date") {
			s.Date = f.surgeryDate
			if !fl.Changed("weeks-post-op") {
				if days, err := models.DaysBetween(f.surgeryDate, models.DateOf(nowFunc())); err == nil && days > 0 {
					s.WeeksPostOp = days / 7
				}
			}
		}
		if fl.Changed("weeks-post-op") {
			s.WeeksPostOp = f.weeksPostOp
		}
		p.WithSurgery(s.Type, s.Date, s.WeeksPostOp)
	}

	if fl.Changed("restriction") {
		p.Restrictions = append([]string{}, f.restrictions...)
	}
	if fl.Changed("medication") {
		p.Medications = append([]string{}, f.medications...)
	}
	if fl.Changed("goal") {
		p.Goals = append([]string{}, f.goals...)
	}
	if fl.Changed("equipment") {
		p.Equipment = append([]string{}, f.equipment...)
	}
	if fl.Changed("time") {
		p.TimeAvailable = f.timeAvailable
	}
	if fl.Changed("baseline-hrv") {
		p.WithBaselineHRV(f.baselineHRV)
	}
	if fl.Changed("baseline-rhr") {
		v := f.baselineRHR
		p.BaselineRestingHR = &v
	}
	if fl.Changed("baseline-sleep") {
		v := f.baselineSleep
		p.BaselineSleep = &v
	}
}

var (
	onboardFlags profileFlags
	onboardForce bool
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile",
	Long: `Create your HealthFlow profile.

The profile captures your surgery, movement restrictions, medications,
available equipment and recovery baselines. Baselines you leave out
default to 65 ms HRV, 62 bpm resting heart rate and 7.5 h sleep.

After saving, today's HRV is simulated from your baseline so you can
generate a plan right away. Log a real reading with 'healthflow hrv log'.

EXAMPLES:

  healthflow onboard --name Sam --surgery "ACL reconstruction" \
    --surgery-date 2025-01-10 --restriction "no jumping" \
    --medication ibuprofen --equipment bands --equipment "stationary bike" \
    --time 40 --goal "return to running"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		isNew, err := repo.IsNewUser()
		if err != nil {
			return fmt.Errorf("failed to check profile: %w", err)
		}
		if !isNew && !onboardForce {
			return errors.New("profile already exists; use 'healthflow profile set' or pass --force to start over")
		}
		if err := onboardFlags.validate(cmd); err != nil {
			return err
		}

		p := models.NewUserProfile()
		hr := onboardBaselineHR
		rhr := onboardBaselineRestingHR
		sleep := onboardBaselineSleep
		p.WithBaselineHRV(onboardBaselineHRV)
		p.BaselineHR = &hr
		p.BaselineRestingHR = &rhr
		p.BaselineSleep = &sleep
		onboardFlags.apply(cmd, p)

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		sample, simulated, err := ensureTodayHRV()
		if err != nil {
			return err
		}

		color.Green("✓ Profile created")
		fmt.Printf("  ID:      %s\n", color.New(color.Faint).Sprint(p.ID.String()[:8]))
		if p.Name != nil {
			fmt.Printf("  Name:    %s\n", *p.Name)
		}
		fmt.Printf("  Surgery: %s\n", p.SurgeryLabel())
		fmt.Println()
		printRecovery(sample, simulated)
		fmt.Println()
		fmt.Println("Next: run 'healthflow plan' for today's workout.")
		return nil
	},
}

func init() {
	onboardFlags.register(onboardCmd)
	onboardCmd.Flags().BoolVar(&onboardForce, "force", false, "replace an existing profile")
	rootCmd.AddCommand(onboardCmd)
}
