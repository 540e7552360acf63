// ABOUTME: MCP prompt implementations for the coach assistant.
// ABOUTME: Provides the daily-reflection guided prompt.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	// daily-reflection - guided end-of-day reflection
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "daily-reflection",
		Description: "Reflect constructively on the day, optionally seeded with a current feeling",
		Arguments: []*mcp.PromptArgument{{
			Name:        "feeling",
			Description: "How the user is feeling right now",
			Required:    false,
		}},
	}, s.handleDailyReflection)
}

func (s *Server) handleDailyReflection(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	userText := "I would like to reflect on my day."
	if feeling := req.Params.Arguments["feeling"]; feeling != "" {
		userText = fmt.Sprintf("I'm feeling %s today and would like to reflect on my day.", feeling)
	}

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "assistant",
				Content: &mcp.TextContent{Text: "You are an encouraging life coach who helps the user reflect constructively."},
			},
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: userText},
			},
		},
	}, nil
}
