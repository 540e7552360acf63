// ABOUTME: CLI command for workout statistics.
// ABOUTME: Streaks, aggregates, and trends over an optional period.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/engine"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	statsDays int
	statsType string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Workout statistics and trends",
	Long: `Analyze workout statistics: totals, averages, current streak, and
per-type breakdown. Periods of 14 days or longer also get a trend
comparison against the previous half of the window.

EXAMPLES:

  coach stats                       # All-time statistics
  coach stats --days 30             # Last 30 days
  coach stats --days 30 -t running  # Running only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var typ *models.WorkoutType
		if statsType != "" {
			if !models.IsValidWorkoutType(statsType) {
				return fmt.Errorf("unknown workout type: %s", statsType)
			}
			wt := models.WorkoutType(statsType)
			typ = &wt
		}

		report, err := engine.NewStats(repo).Report(statsDays, typ)
		if err != nil {
			return fmt.Errorf("failed to compute workout stats: %w", err)
		}

		fmt.Println(report)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "analysis period in days (default all time)")
	statsCmd.Flags().StringVarP(&statsType, "type", "t", "", "filter by workout type")
	rootCmd.AddCommand(statsCmd)
}
