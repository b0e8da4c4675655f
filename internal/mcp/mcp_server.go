// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/concord/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the concord MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, reader contract.SourceReader) *server.MCPServer {
	s := server.NewMCPServer(
		"Concord Aggregation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		reader:  reader,
	}

	// --- 1. Tool: aggregate_sources ---
	s.AddTool(mcp.NewTool("aggregate_sources",
		mcp.WithDescription("Align three per-country CSV sources and return the simple and weighted mean reports as JSON. No files are written."),
		mcp.WithString("source1", mcp.Description("Path to the first source CSV."), mcp.Required()),
		mcp.WithString("source2", mcp.Description("Path to the second source CSV."), mcp.Required()),
		mcp.WithString("source3", mcp.Description("Path to the third source CSV."), mcp.Required()),
		mcp.WithNumber("source1_year", mcp.Description("Publication year of source1 (defaults to 2019).")),
		mcp.WithNumber("source2_year", mcp.Description("Publication year of source2 (defaults to 2025).")),
		mcp.WithNumber("source3_year", mcp.Description("Publication year of source3 (defaults to 2024).")),
		mcp.WithNumber("reference_year", mcp.Description("Year recency is measured against (defaults to the current year).")),
		mcp.WithString("independence_adjustments", mcp.Description("Per-source adjustments, e.g. 'source1=0.7,source2=1.0,source3=0.6'.")),
	), h.handleAggregateSources)

	// --- 2. Tool: compute_weights ---
	s.AddTool(mcp.NewTool("compute_weights",
		mcp.WithDescription("Compute the normalized recency and independence weights of the three sources."),
		mcp.WithNumber("source1_year", mcp.Description("Publication year of source1.")),
		mcp.WithNumber("source2_year", mcp.Description("Publication year of source2.")),
		mcp.WithNumber("source3_year", mcp.Description("Publication year of source3.")),
		mcp.WithNumber("reference_year", mcp.Description("Year recency is measured against.")),
		mcp.WithString("independence_adjustments", mcp.Description("Per-source adjustments, e.g. 'dp=0.7,iit=1.0,wd=0.6'.")),
	), h.handleComputeWeights)

	return s
}

// StartMCPServer starts the concord MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, reader contract.SourceReader) error {
	s := NewMCPServer(baseCfg, reader)
	return server.ServeStdio(s)
}
