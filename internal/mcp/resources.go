// ABOUTME: MCP resource implementations for the coach assistant.
// ABOUTME: Provides the coach://tips/daily rotating coaching tip.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// dailyTips rotate by day of month so the tip changes each day without
// any stored state.
var dailyTips = []string{
	"Take a short walk today to refresh your mind and body.",
	"Write down three things you're grateful for.",
	"Spend five minutes practising deep breathing.",
	"Reach out to someone you appreciate and tell them why.",
	"Set a small, achievable goal for the next hour.",
	"Declutter a tiny area of your workspace.",
	"Drink a full glass of water and stretch your shoulders.",
}

func (s *Server) registerResources() {
	// coach://tips/daily - A short coaching tip that changes each day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://tips/daily",
		Name:        "Daily Coaching Tip",
		Description: "A short coaching tip that changes each day",
		MIMEType:    "text/plain",
	}, s.handleDailyTipResource)
}

func (s *Server) handleDailyTipResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	tip := dailyTips[time.Now().Day()%len(dailyTips)]

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "coach://tips/daily",
			MIMEType: "text/plain",
			Text:     tip,
		}},
	}, nil
}
