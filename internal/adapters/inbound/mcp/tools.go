package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/longregen/doccheck/internal/adapters/outbound/config"
	"github.com/longregen/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/longregen/doccheck/internal/adapters/outbound/workspace"
	"github.com/longregen/doccheck/internal/application"
)

// registerTools registers the doccheck MCP tools on the given server.
func registerTools(s *server.MCPServer, workspacePath string) {
	s.AddTool(
		mcplib.NewTool("doccheck_validate",
			mcplib.WithDescription("Run all documentation-consistency checks and return the full report as JSON"),
			mcplib.WithString("workspace",
				mcplib.Description("Workspace root (defaults to the server's workspace)"),
			),
		),
		handleValidate(workspacePath),
	)

	s.AddTool(
		mcplib.NewTool("doccheck_rules",
			mcplib.WithDescription("Return the effective rule set (artifact paths, section map, mandatory probes, env vars) as JSON"),
			mcplib.WithString("workspace",
				mcplib.Description("Workspace root (defaults to the server's workspace)"),
			),
		),
		handleRules(workspacePath),
	)
}

func handleValidate(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root := requestWorkspace(request, workspacePath)

		// Progress output has no stdio channel here; only the report matters.
		svc := application.NewValidateService(
			config.New(),
			workspace.New(),
			gitinfo.New(),
			io.Discard,
			false,
		)

		report, err := svc.Validate(root)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root := requestWorkspace(request, workspacePath)

		rules, err := config.New().Load(root)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules failed: %v", err)), nil
		}
		return jsonResult(rules)
	}
}

func requestWorkspace(request mcplib.CallToolRequest, fallback string) string {
	if ws, ok := request.GetArguments()["workspace"].(string); ok && ws != "" {
		return ws
	}
	return fallback
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
