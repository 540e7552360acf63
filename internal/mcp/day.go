// ABOUTME: MCP tools for the daily rhythm: start-day, recap-day, workout-stats.
// ABOUTME: Thin dispatch over the report engines.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerDayTools() {
	// start-day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start-day",
		Description: "Generate a morning briefing from recent recaps, due items, notes, and workouts",
	}, s.handleStartDay)

	// recap-day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recap-day",
		Description: "Summarize a day's goals, todos, notes, conversations, and workouts into a saved recap",
	}, s.handleRecapDay)

	// workout-stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout-stats",
		Description: "Analyze workout statistics, streaks, and trends over an optional period",
	}, s.handleWorkoutStats)
}

type startDayInput struct {
	LookbackDays int `json:"lookback_days,omitempty" jsonschema:"How many days of context to include (1-7, default 3)"`
}

type recapDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date to recap (YYYY-MM-DD), defaults to today"`
}

type workoutStatsInput struct {
	Days int    `json:"days,omitempty" jsonschema:"Analysis period in days (default: all time)"`
	Type string `json:"type,omitempty" jsonschema:"Filter by workout type (running, cycling, functional)"`
}

func (s *Server) handleStartDay(ctx context.Context, req *mcp.CallToolRequest, input startDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	briefing, err := s.briefing.Generate(input.LookbackDays)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to generate briefing: %w", err)
	}
	return nil, simpleOutput{Message: briefing}, nil
}

func (s *Server) handleRecapDay(ctx context.Context, req *mcp.CallToolRequest, input recapDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	result, err := s.recap.Generate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to generate recap: %w", err)
	}
	return nil, simpleOutput{Message: result.Confirmation}, nil
}

func (s *Server) handleWorkoutStats(ctx context.Context, req *mcp.CallToolRequest, input workoutStatsInput) (*mcp.CallToolResult, simpleOutput, error) {
	var typ *models.WorkoutType
	if input.Type != "" {
		if !models.IsValidWorkoutType(input.Type) {
			return nil, simpleOutput{}, fmt.Errorf("unknown workout type: %s", input.Type)
		}
		wt := models.WorkoutType(input.Type)
		typ = &wt
	}

	report, err := s.stats.Report(input.Days, typ)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to compute workout stats: %w", err)
	}
	return nil, simpleOutput{Message: report}, nil
}
