// ABOUTME: CLI commands for heart-rate variability readings.
// ABOUTME: Supports today, log, simulate, list, and trend subcommands.
package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/storage"
)

const trendBarWidth = 30

var (
	hrvLogRHR   float64
	hrvLogSleep float64
	hrvLogDate  string
	hrvLimit    int
	hrvDays     int
)

var hrvCmd = &cobra.Command{
	Use:   "hrv",
	Short: "Track heart-rate variability",
	Long: `Track daily heart-rate variability (HRV).

Each day has at most one reading. Its deviation from your baseline sets the
recovery band that drives workout intensity:

  optimal    better than -5%     High intensity
  good       -5% to -15%         Moderate-High
  moderate   -15% to -25%        Moderate
  poor       below -25%          Light, focus on recovery

Without a wearable, 'healthflow hrv simulate' generates a plausible reading
from your baseline.`,
}

var hrvTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's recovery",
	Long:  `Show today's HRV and recovery. A reading is simulated if none was logged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, simulated, err := ensureTodayHRV()
		if err != nil {
			return err
		}
		printRecovery(sample, simulated)
		return nil
	},
}

var hrvLogCmd = &cobra.Command{
	Use:   "log <hrv-ms>",
	Short: "Record an HRV reading",
	Long: `Record an HRV reading in milliseconds. A reading for the same date
replaces the earlier one.

Examples:
  healthflow hrv log 58 --rhr 61 --sleep 7.2
  healthflow hrv log 62 --date 2025-03-04`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hrv, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid hrv value: %s", args[0])
		}
		if hrv <= 0 {
			return errors.New("hrv must be positive")
		}
		if hrvLogRHR < 0 || hrvLogSleep < 0 {
			return errors.New("resting heart rate and sleep cannot be negative")
		}

		date := models.DateOf(nowFunc())
		if hrvLogDate != "" {
			if _, err := models.ParseDate(hrvLogDate); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", hrvLogDate)
			}
			date = hrvLogDate
		}

		baseline := models.DefaultBaselineHRV
		if p, err := repo.GetProfile(); err == nil && p != nil {
			baseline = p.GetBaselineHRV()
		}

		sample := models.NewHRVSample(date, hrv, baseline, hrvLogRHR, hrvLogSleep)
		if err := repo.SaveHRVSample(sample); err != nil {
			return fmt.Errorf("failed to save hrv: %w", err)
		}

		color.Green("✓ Logged HRV for %s", date)
		printRecovery(sample, false)
		return nil
	},
}

var hrvSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate today's reading from your baseline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline := models.DefaultBaselineHRV
		if p, err := repo.GetProfile(); err == nil && p != nil {
			baseline = p.GetBaselineHRV()
		}

		sample := storage.GenerateSimulatedHRV(baseline, nowFunc(), nil)
		if err := repo.SaveHRVSample(sample); err != nil {
			return fmt.Errorf("failed to save hrv: %w", err)
		}

		color.Green("✓ Simulated HRV for %s", sample.Date)
		printRecovery(sample, true)
		return nil
	},
}

var hrvListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List HRV readings, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := repo.GetHRVHistory(hrvLimit)
		if err != nil {
			return fmt.Errorf("failed to list hrv: %w", err)
		}
		if len(samples) == 0 {
			fmt.Println("No HRV readings found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range samples {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(s.Date),
				padRight(fmt.Sprintf("%.0f ms", s.HRV), 8),
				padRight(fmt.Sprintf("%+.1f%%", s.Deviation), 8),
				recoveryColor(s.RecoveryScore).Sprint(s.RecoveryScore))
		}
		return nil
	},
}

var hrvTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Chart recent HRV, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := repo.GetHRVTrend(hrvDays)
		if err != nil {
			return fmt.Errorf("failed to get hrv trend: %w", err)
		}
		if len(samples) == 0 {
			fmt.Println("No HRV readings found.")
			return nil
		}

		maxHRV := 0.0
		sum := 0.0
		for _, s := range samples {
			maxHRV = math.Max(maxHRV, s.HRV)
			sum += s.HRV
		}

		faint := color.New(color.Faint)
		for _, s := range samples {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(s.Date),
				recoveryColor(s.RecoveryScore).Sprint(padRight(trendBar(s.HRV, maxHRV), trendBarWidth)),
				fmt.Sprintf("%.0f ms", s.HRV))
		}
		fmt.Println()
		fmt.Printf("Average: %.1f ms over %d day(s)\n", sum/float64(len(samples)), len(samples))
		return nil
	},
}

// trendBar scales value against maxValue into at most trendBarWidth blocks.
func trendBar(value, maxValue float64) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / maxValue * trendBarWidth))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("#", n)
}

func init() {
	hrvLogCmd.Flags().Float64Var(&hrvLogRHR, "rhr", 0, "resting heart rate in bpm")
	hrvLogCmd.Flags().Float64Var(&hrvLogSleep, "sleep", 0, "hours slept")
	hrvLogCmd.Flags().StringVar(&hrvLogDate, "date", "", "reading date (YYYY-MM-DD, default today)")
	hrvListCmd.Flags().IntVarP(&hrvLimit, "limit", "n", 14, "max number of results (0 for all)")
	hrvTrendCmd.Flags().IntVar(&hrvDays, "days", 7, "number of days to chart")

	hrvCmd.AddCommand(hrvTodayCmd)
	hrvCmd.AddCommand(hrvLogCmd)
	hrvCmd.AddCommand(hrvSimulateCmd)
	hrvCmd.AddCommand(hrvListCmd)
	hrvCmd.AddCommand(hrvTrendCmd)
	rootCmd.AddCommand(hrvCmd)
}
