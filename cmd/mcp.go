package cmd

import (
	"github.com/huangsam/concord/internal/mcp"
	"github.com/huangsam/concord/internal/source"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the concord MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents aggregate sources and compute weights via standard tools.`,
	// Source paths arrive per tool call, so none are required here.
	PreRunE: setupWithoutSources,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, source.NewCSVReader())
	},
}
