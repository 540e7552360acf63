// ABOUTME: MCP server setup for the coach assistant.
// ABOUTME: Wires storage and the report engines into tool, resource, and prompt registrations.
package mcp

import (
	"context"

	"github.com/harperreed/coach/internal/engine"
	"github.com/harperreed/coach/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and engine access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	briefing  *engine.Briefing
	recap     *engine.Recap
	stats     *engine.Stats
}

// NewServer creates a new MCP server over the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coach",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		briefing:  engine.NewBriefing(repo),
		recap:     engine.NewRecap(repo),
		stats:     engine.NewStats(repo),
	}

	s.registerTools()
	s.registerWorkoutTools()
	s.registerDayTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
