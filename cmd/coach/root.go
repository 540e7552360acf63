// ABOUTME: Root Cobra command for coach CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Personal coaching assistant",
	Long: `Coach is a CLI tool and MCP server for personal coaching.

WHAT IT TRACKS:

  Goals      longer-horizon objectives with optional due dates
  Todos      short tasks with due dates and tags
  Notes      free-form observations, tagged for retrieval
  Workouts   running, cycling, and functional training sessions

QUICK START:

  $ coach goal add "Run a half marathon" --due 2026-11-01
  $ coach todo add "Book dentist appointment" --due 2026-09-02
  $ coach note add "Slept badly, skip intervals today" --tags sleep,training
  $ coach workout add running --duration 45 --distance 5.2 --rpe 7
  $ coach goal list                      # See active goals
  $ coach workout list --type running    # Filter workouts by type

DAILY RHYTHM:

  $ coach day start              # Morning briefing: due items, recent notes, streak
  $ coach day recap              # Evening recap, saved as a tagged note
  $ coach stats --days 30        # Workout statistics and trends

MCP INTEGRATION:

  Run 'coach mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "coach": { "command": "coach", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/coach/coach.db.
  Override the directory with COACH_DATA_DIR or the data_dir key in
  ~/.config/coach/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the coach version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("coach 1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
