// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Add, list, show, and delete training sessions.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	workoutDate     string
	workoutDuration int
	workoutDistance float64
	workoutHR       int
	workoutRPE      int
	workoutNotes    string
	workoutType     string
	workoutDays     int
	workoutLimit    int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Log and review training sessions.

Workout types: running, cycling, functional. Functional workouts can
carry per-exercise details when logged through the MCP server.

EXAMPLES:

  coach workout add running --duration 45 --distance 5.2 --rpe 7
  coach workout add functional --duration 30 --notes "Kettlebell circuit"
  coach workout add cycling --date 2026-08-25 --distance 18
  coach workout list                      # Recent workouts
  coach workout list --type running       # Filter by type
  coach workout list --days 30            # Last 30 days only
  coach workout show 8                    # Full details for workout #8
  coach workout delete 8                  # Remove workout #8`,
}

var workoutAddCmd = &cobra.Command{
	Use:     "add <type>",
	Aliases: []string{"a"},
	Short:   "Log a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidWorkoutType(args[0]) {
			return fmt.Errorf("unknown workout type: %s\nValid types: running, cycling, functional", args[0])
		}

		date := workoutDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		w := models.NewWorkout(models.WorkoutType(args[0]), date)
		if workoutDuration > 0 {
			w.WithDuration(workoutDuration)
		}
		if workoutDistance > 0 {
			w.WithDistance(workoutDistance)
		}
		if workoutHR > 0 {
			w.WithHeartRate(workoutHR)
		}
		if workoutRPE > 0 {
			w.WithRPE(workoutRPE)
		}
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}

		if err := repo.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Logged %s workout #%d", w.Type, w.ID)
		fmt.Printf("  %s%s\n", w.Date, workoutMetricSummary(w))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.WorkoutFilter{Limit: workoutLimit}
		if workoutType != "" {
			if !models.IsValidWorkoutType(workoutType) {
				return fmt.Errorf("unknown workout type: %s", workoutType)
			}
			wt := models.WorkoutType(workoutType)
			filter.Type = &wt
		}
		if workoutDays > 0 {
			filter.SinceDate = time.Now().UTC().AddDate(0, 0, -workoutDays).Format("2006-01-02")
		}

		workouts, err := repo.ListWorkouts(filter)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("#%d %s %s%s\n",
				w.ID, faint.Sprint(w.Date), w.Type, faint.Sprint(workoutMetricSummary(w)))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		w, err := repo.GetWorkout(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("workout not found: #%d", id)
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		fmt.Printf("Workout #%d: %s on %s\n", w.ID, w.Type, w.Date)
		if w.DurationMins != nil {
			fmt.Printf("  Duration:   %d minutes\n", *w.DurationMins)
		}
		if w.DistanceMiles != nil {
			fmt.Printf("  Distance:   %.1f miles\n", *w.DistanceMiles)
		}
		if w.AvgHeartRate != nil {
			fmt.Printf("  Avg HR:     %d BPM\n", *w.AvgHeartRate)
		}
		if w.RPE != nil {
			fmt.Printf("  RPE:        %d/10\n", *w.RPE)
		}
		if w.Notes != nil && *w.Notes != "" {
			fmt.Printf("  Notes:      %s\n", *w.Notes)
		}
		if len(w.Exercises) > 0 {
			fmt.Println("  Exercises:")
			for i, ex := range w.Exercises {
				fmt.Printf("    %d. %s%s\n", i+1, ex.Name, exerciseSummary(ex))
			}
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteWorkout(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("workout not found: #%d", id)
			}
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted workout #%d", id)
		return nil
	},
}

func workoutMetricSummary(w *models.Workout) string {
	var s string
	if w.DurationMins != nil {
		s += fmt.Sprintf(" %dmin", *w.DurationMins)
	}
	if w.DistanceMiles != nil {
		s += fmt.Sprintf(" %.1fmi", *w.DistanceMiles)
	}
	if w.AvgHeartRate != nil {
		s += fmt.Sprintf(" %dbpm", *w.AvgHeartRate)
	}
	if w.RPE != nil {
		s += fmt.Sprintf(" rpe%d", *w.RPE)
	}
	return s
}

func exerciseSummary(ex models.Exercise) string {
	var s string
	if ex.Sets != nil && ex.Reps != nil {
		s += fmt.Sprintf(" %dx%s", *ex.Sets, *ex.Reps)
	}
	if ex.WeightLbs != nil {
		s += fmt.Sprintf(" @ %g lbs", *ex.WeightLbs)
	}
	return s
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD, default today)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "duration in minutes")
	workoutAddCmd.Flags().Float64Var(&workoutDistance, "distance", 0, "distance in miles")
	workoutAddCmd.Flags().IntVar(&workoutHR, "hr", 0, "average heart rate in BPM")
	workoutAddCmd.Flags().IntVar(&workoutRPE, "rpe", 0, "perceived exertion (1-10)")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "notes for the workout")
	workoutListCmd.Flags().StringVarP(&workoutType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVar(&workoutDays, "days", 0, "only workouts from the last N days")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutShowCmd, workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
