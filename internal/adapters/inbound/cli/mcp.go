package cli

import (
	mcpadapter "github.com/longregen/doccheck/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the doccheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the doccheck MCP server (stdio)",
		Long:  "Start the doccheck MCP server using stdio transport. This lets AI coding assistants run documentation validation and inspect the effective rule set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				root = "."
			}
			s := mcpadapter.NewDocCheckMCPServer(root)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVarP(&root, "workspace", "w", "", "Workspace root (defaults to current working directory)")

	return cmd
}
