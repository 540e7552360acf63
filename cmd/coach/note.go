// ABOUTME: CLI commands for managing notes.
// ABOUTME: Add, list, and delete with tag filtering.
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
	noteTags    []string
	noteListTag string
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"n"},
	Short:   "Manage notes",
	Long: `Manage free-form notes. Tags make notes retrievable later; the daily
briefing and recap read notes by tag.

EXAMPLES:

  coach note add "Slept badly, skip intervals today" --tags sleep,training
  coach note list                   # All notes, newest first
  coach note list --tag training    # Filter by tag
  coach note delete 12              # Remove note #12`,
}

var noteAddCmd = &cobra.Command{
	Use:     "add <text>",
	Aliases: []string{"a"},
	Short:   "Add a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := models.NewNote(args[0], noteTags)

		if err := repo.CreateNote(n); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		color.Green("✓ Added note #%d", n.ID)
		if len(n.Tags) > 0 {
			fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("[%s]", strings.Join(n.Tags, ", ")))
		}
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := repo.ListNotes(noteListTag)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range notes {
			tags := ""
			if len(n.Tags) > 0 {
				tags = faint.Sprintf(" [%s]", strings.Join(n.Tags, ", "))
			}
			fmt.Printf("#%d %s %s%s\n",
				n.ID,
				faint.Sprint(n.CreatedAt.Format("2006-01-02 15:04")),
				truncate(n.Text, 80),
				tags)
		}
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteNote(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("note not found: #%d", id)
			}
			return fmt.Errorf("failed to delete note: %w", err)
		}

		color.Yellow("✗ Deleted note #%d", id)
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tags", nil, "comma-separated tags")
	noteListCmd.Flags().StringVarP(&noteListTag, "tag", "t", "", "filter by tag")
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}
