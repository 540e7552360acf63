// ABOUTME: CLI commands for managing goals.
// ABOUTME: Add, list, complete, and delete with due date support.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	goalDue string
	goalAll bool
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage goals",
	Long: `Manage longer-horizon goals.

EXAMPLES:

  coach goal add "Run a half marathon" --due 2026-11-01
  coach goal list               # Active goals only
  coach goal list --all         # Include completed goals
  coach goal done 3             # Mark goal #3 complete
  coach goal delete 3           # Remove goal #3`,
}

var goalAddCmd = &cobra.Command{
	Use:     "add <text>",
	Aliases: []string{"a"},
	Short:   "Add a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := models.NewGoal(args[0])
		if goalDue != "" {
			g.WithDueDate(goalDue)
		}

		if err := repo.CreateGoal(g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Added goal #%d", g.ID)
		fmt.Printf("  %s%s\n", g.Text, dueSuffix(g.DueDate))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var goals []*models.Goal
		var err error
		if goalAll {
			goals, err = repo.ListGoals()
		} else {
			goals, err = repo.ActiveGoals()
		}
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goals {
			marker := " "
			if g.Completed {
				marker = color.GreenString("✓")
			}
			fmt.Printf("%s #%d %s%s\n",
				marker, g.ID, g.Text, faint.Sprint(dueSuffix(g.DueDate)))
		}
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		completed := true
		if err := repo.UpdateGoal(id, storage.GoalUpdate{Completed: &completed}); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("goal not found: #%d", id)
			}
			return fmt.Errorf("failed to update goal: %w", err)
		}

		color.Green("✓ Completed goal #%d", id)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteGoal(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("goal not found: #%d", id)
			}
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Yellow("✗ Deleted goal #%d", id)
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func dueSuffix(dueDate *string) string {
	if dueDate == nil || *dueDate == "" {
		return ""
	}
	return fmt.Sprintf(" (due %s)", *dueDate)
}

func init() {
	goalAddCmd.Flags().StringVar(&goalDue, "due", "", "due date (YYYY-MM-DD)")
	goalListCmd.Flags().BoolVar(&goalAll, "all", false, "include completed goals")
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalDoneCmd, goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
