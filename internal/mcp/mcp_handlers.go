package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/concord/core"
	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/outwriter"
	"github.com/huangsam/concord/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	reader  contract.SourceReader
}

// weightsResponse is the payload of compute_weights.
type weightsResponse struct {
	ReferenceYear int                          `json:"reference_year"`
	Years         map[schema.SourceKey]int     `json:"years"`
	Adjustments   map[schema.SourceKey]float64 `json:"adjustments"`
	Weights       schema.WeightTriple          `json:"weights"`
	Method        string                       `json:"method"`
}

// applyWeighting overrides years, reference year and adjustments from the request.
func applyWeighting(cfg *contract.Config, request mcp.CallToolRequest) {
	for i, key := range schema.AllSources {
		if y := request.GetInt(string(key)+"_year", 0); y != 0 {
			cfg.Sources[i].Year = y
		}
	}
	if y := request.GetInt("reference_year", 0); y != 0 {
		cfg.ReferenceYear = y
	}
	if a := request.GetString("independence_adjustments", ""); a != "" {
		cfg.Adjustments = contract.ParseAdjustments(a)
	}
}

func (h *toolHandler) handleAggregateSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	for i, key := range schema.AllSources {
		cfg.Sources[i].Key = key
		cfg.Sources[i].Path = request.GetString(string(key), "")
	}
	applyWeighting(cfg, request)

	if err := contract.RevalidateSources(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid aggregation parameters: %v", err)), nil
	}

	result, err := core.GetAggregateResults(ctx, cfg, h.reader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(outwriter.NewJSONReport(result), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeWeights(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyWeighting(cfg, request)

	weights, method, err := core.GetWeights(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weight computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(weightsResponse{
		ReferenceYear: cfg.ReferenceYear,
		Years:         cfg.Years(),
		Adjustments:   cfg.Adjustments,
		Weights:       weights,
		Method:        method,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
