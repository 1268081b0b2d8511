package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name is the implementation name announced to MCP clients.
const Name = "sanctions-law"

// Server is the MCP server for the sanctions law reference.
type Server struct {
	ports   *Ports
	metrics *Metrics
	server  *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
// metrics may be nil, in which case tool calls are not measured.
func NewServer(ports *Ports, version string, metrics *Metrics) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    Name,
		Version: version,
	}

	s := &Server{
		ports:   ports,
		metrics: metrics,
		server:  mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns a streamable HTTP handler serving this server.
// Every HTTP session shares the same tool set and ports.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
