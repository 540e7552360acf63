// ABOUTME: CLI commands for the daily rhythm.
// ABOUTME: Morning briefing and evening recap from the report engines.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/engine"
	"github.com/spf13/cobra"
)

var (
	dayLookback int
	dayDate     string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Daily briefing and recap",
	Long: `Generate the morning briefing or the evening recap.

The briefing pulls together recent recaps, items due soon, fresh notes,
and workout activity. The recap summarizes a day and saves it as a note
tagged "recap" and "date-YYYY-MM-DD" so later briefings can find it.

EXAMPLES:

  coach day start                   # Briefing with default 3-day lookback
  coach day start --lookback 7      # Wider context window
  coach day recap                   # Recap today
  coach day recap --date 2026-08-28 # Recap a past day`,
}

var dayStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Generate the morning briefing",
	RunE: func(cmd *cobra.Command, args []string) error {
		briefing, err := engine.NewBriefing(repo).Generate(dayLookback)
		if err != nil {
			return fmt.Errorf("failed to generate briefing: %w", err)
		}

		fmt.Println(briefing)
		return nil
	},
}

var dayRecapCmd = &cobra.Command{
	Use:   "recap",
	Short: "Generate and save a daily recap",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := engine.NewRecap(repo).Generate(dayDate)
		if err != nil {
			return fmt.Errorf("failed to generate recap: %w", err)
		}

		fmt.Println(result.Report)
		fmt.Println()
		fmt.Println(result.Confirmation)
		return nil
	},
}

func init() {
	dayStartCmd.Flags().IntVar(&dayLookback, "lookback", 0, "days of context to include (1-7, default 3)")
	dayRecapCmd.Flags().StringVar(&dayDate, "date", "", "date to recap (YYYY-MM-DD, default today)")
	dayCmd.AddCommand(dayStartCmd, dayRecapCmd)
	rootCmd.AddCommand(dayCmd)
}
