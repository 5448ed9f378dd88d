// Package mcp exposes the gate over MCP stdio, so MCP clients can consult
// policy decisions without the PreToolUse hook wiring. Stdio transport
// only; the engine never opens a network listener.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsp/guardrails/internal/policy"
)

// Config holds MCP server configuration.
type Config struct {
	PolicyPath string
	AuditPath  string
}

// Server wraps the MCP SDK server around policy evaluation.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       Config
}

// New creates an MCP server. The policy source is validated once up front
// so a broken configuration fails at startup, then reloaded per call so
// edits take effect without a restart.
func New(cfg Config) (*Server, error) {
	if _, err := policy.Load(cfg.PolicyPath); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	s := &Server{cfg: cfg}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "guardrails",
			Version: "0.1.0",
		},
		nil,
	)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "guardrails_check",
		Description: "Check whether a tool call would be allowed by guardrails policy without executing it (dry-run).",
	}, s.handleCheck)

	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is
// cancelled or the transport closes.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}
