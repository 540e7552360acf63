// ABOUTME: CLI commands for managing todos.
// ABOUTME: Add, list, complete, and delete with due dates and tags.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	todoDue  string
	todoTags []string
	todoAll  bool
)

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"t"},
	Short:   "Manage todos",
	Long: `Manage short-horizon tasks.

EXAMPLES:

  coach todo add "Book dentist appointment" --due 2026-09-02
  coach todo add "Stretch hamstrings" --tags training,recovery
  coach todo list               # Pending todos only
  coach todo list --all         # Include completed todos
  coach todo done 5             # Mark todo #5 complete
  coach todo delete 5           # Remove todo #5`,
}

var todoAddCmd = &cobra.Command{
	Use:     "add <text>",
	Aliases: []string{"a"},
	Short:   "Add a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		td := models.NewTodo(args[0])
		if todoDue != "" {
			td.WithDueDate(todoDue)
		}
		if len(todoTags) > 0 {
			td.WithTags(todoTags)
		}

		if err := repo.CreateTodo(td); err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		color.Green("✓ Added todo #%d", td.ID)
		fmt.Printf("  %s%s\n", td.Text, dueSuffix(td.DueDate))
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List todos",
	RunE: func(cmd *cobra.Command, args []string) error {
		var todos []*models.Todo
		var err error
		if todoAll {
			todos, err = repo.ListTodos()
		} else {
			todos, err = repo.PendingTodos()
		}
		if err != nil {
			return fmt.Errorf("failed to list todos: %w", err)
		}

		if len(todos) == 0 {
			fmt.Println("No todos found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, td := range todos {
			marker := " "
			if td.Completed {
				marker = color.GreenString("✓")
			}
			extras := dueSuffix(td.DueDate)
			if len(td.Tags) > 0 {
				extras += fmt.Sprintf(" [%s]", strings.Join(td.Tags, ", "))
			}
			fmt.Printf("%s #%d %s%s\n", marker, td.ID, td.Text, faint.Sprint(extras))
		}
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		completed := true
		if err := repo.UpdateTodo(id, storage.TodoUpdate{Completed: &completed}); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("todo not found: #%d", id)
			}
			return fmt.Errorf("failed to update todo: %w", err)
		}

		color.Green("✓ Completed todo #%d", id)
		return nil
	},
}

var todoDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteTodo(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("todo not found: #%d", id)
			}
			return fmt.Errorf("failed to delete todo: %w", err)
		}

		color.Yellow("✗ Deleted todo #%d", id)
		return nil
	},
}

func init() {
	todoAddCmd.Flags().StringVar(&todoDue, "due", "", "due date (YYYY-MM-DD)")
	todoAddCmd.Flags().StringSliceVar(&todoTags, "tags", nil, "comma-separated tags")
	todoListCmd.Flags().BoolVar(&todoAll, "all", false, "include completed todos")
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoDoneCmd, todoDeleteCmd)
	rootCmd.AddCommand(todoCmd)
}
