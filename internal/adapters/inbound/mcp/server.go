package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDocCheckMCPServer creates a new MCP server with the doccheck tools
// registered. The workspacePath is the default root directory to validate.
func NewDocCheckMCPServer(workspacePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"doccheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, workspacePath)

	return s
}
