// ABOUTME: MCP server setup for the healthflow recovery coach.
// ABOUTME: Wraps MCP server with the storage Repository and AI backend client.
package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/logger"
	"github.com/harperreed/healthflow/internal/orchestrator"
	"github.com/harperreed/healthflow/internal/storage"
)

// Server wraps the MCP server with storage and backend access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	orch      *orchestrator.Client
	log       *logger.Logger
	now       func() time.Time
}

// NewServer creates a new MCP server with the given storage and backend client.
func NewServer(repo storage.Repository, orch *orchestrator.Client, log *logger.Logger) (*Server, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if orch == nil {
		orch = orchestrator.New(orchestrator.Options{Logger: log})
	}
	if log == nil {
		log = logger.Nop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "healthflow",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		orch:      orch,
		log:       log.With("component", "mcp"),
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
