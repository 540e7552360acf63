// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/coach/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your coaching data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "coach": {
        "command": "coach",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add-goal / update-goal / delete-goal / list-goals      Manage goals
  add-todo / update-todo / delete-todo / list-todos      Manage todos
  add-note / update-note / delete-note / list-notes      Manage notes
  add-workout / update-workout / delete-workout
  list-workouts                                          Manage workouts
  remember-convo      Save a conversation summary as a tagged note
  user-summary        Goals and notes at a glance
  start-day           Morning briefing
  recap-day           Evening recap, saved as a note
  workout-stats       Workout statistics, streaks, and trends

AVAILABLE RESOURCES:

  coach://tips/daily      A short coaching tip that changes each day

AVAILABLE PROMPTS:

  daily-reflection        Guided end-of-day reflection`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
