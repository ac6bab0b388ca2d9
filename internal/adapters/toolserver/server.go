// Package toolserver exposes the assistant's file, app and sleep operations as
// MCP tools, so an LLM agent loop can call them.
package toolserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// Name is the MCP implementation name announced to clients.
const Name = "stonic"

// Assistant is the set of operations served as tools.
type Assistant interface {
	Resolve(ctx context.Context, query string) (domain.Resolution, error)
	Open(ctx context.Context, query string) (domain.Resolution, error)
	Do(ctx context.Context, command string) string
	Rename(ctx context.Context, query, newName string) (domain.Item, error)
	Delete(ctx context.Context, query string, recursive bool) (domain.Item, error)
	CreateFolder(ctx context.Context, name string) (domain.Item, error)
	RefreshCache(ctx context.Context) int
	Launch(ctx context.Context, app string) (string, error)
	Sleeping() bool
	SetSleeping(sleeping bool) error
	ProcessSleepIntent(text string) (string, error)
}

// Server is an MCP server with the assistant's tools registered.
type Server struct {
	server    *mcp.Server
	assistant Assistant
	logger    ports.Logger
}

// New creates a Server and registers every tool.
func New(assistant Assistant, logger ports.Logger, version string) *Server {
	s := &Server{
		server:    mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil),
		assistant: assistant,
		logger:    logger,
	}
	s.register()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// Run serves one session over t until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logger.Debug("tool server started", "transport", transportName(t))
	return s.server.Run(ctx, t)
}

func transportName(t mcp.Transport) string {
	switch t.(type) {
	case *mcp.StdioTransport:
		return "stdio"
	case *mcp.InMemoryTransport:
		return "memory"
	default:
		return "custom"
	}
}

// addTool registers h under name. Errors returned by h become tool errors.
func addTool[In, Out any](s *Server, name, description string, h func(context.Context, In) (Out, error)) {
	tool := &mcp.Tool{Name: name, Description: description}
	mcp.AddTool(s.server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		s.logger.Debug("tool call", "tool", name)
		out, err := h(ctx, in)
		if err != nil {
			s.logger.Debug("tool call failed", "tool", name, "error", err.Error())
		}
		return nil, out, err
	})
}
