package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/concord/internal/contract"
	mcp_internal "github.com/huangsam/concord/internal/mcp"
	"github.com/huangsam/concord/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	cfg := &contract.Config{
		ReferenceYear:   2025,
		Adjustments:     schema.DefaultAdjustments(),
		Columns:         schema.DefaultColumnCandidates(),
		OutputDirectory: ".",
		OutputPrefix:    "concord",
	}
	years := contract.DefaultYears()
	for i, key := range schema.AllSources {
		cfg.Sources[i] = contract.SourceConfig{Key: key, Year: years[key]}
	}
	return cfg
}

func touchSources(t *testing.T) map[string]any {
	t.Helper()
	dir := t.TempDir()
	args := map[string]any{}
	for _, key := range schema.AllSources {
		path := filepath.Join(dir, string(key)+".csv")
		require.NoError(t, os.WriteFile(path, []byte("country,score\n"), 0o644))
		args[string(key)] = path
	}
	return args
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	mockReader := &contract.MockSourceReader{}
	s := mcp_internal.NewMCPServer(baseConfig(), mockReader)
	ctx := context.Background()

	t.Run("aggregate_sources missing source", func(t *testing.T) {
		tool := s.GetTool("aggregate_sources")
		require.NotNil(t, tool, "Tool aggregate_sources should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "aggregate_sources",
				Arguments: map[string]any{
					"source1": "/nonexistent/a.csv",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid aggregation parameters")
	})

	t.Run("aggregate_sources future year", func(t *testing.T) {
		tool := s.GetTool("aggregate_sources")
		require.NotNil(t, tool)

		args := touchSources(t)
		args["source2_year"] = 2030.0

		res, err := tool.Handler(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "aggregate_sources", Arguments: args},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "aggregation failed")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "after reference year 2025")
	})

	t.Run("compute_weights degenerate", func(t *testing.T) {
		tool := s.GetTool("compute_weights")
		require.NotNil(t, tool, "Tool compute_weights should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "compute_weights",
				Arguments: map[string]any{
					"independence_adjustments": "source1=0,source2=0,source3=0",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "weight computation failed")
	})

	mockReader.AssertNotCalled(t, "ReadTable", mock.Anything)
}

func TestMCPServerHandlers_ComputeWeights(t *testing.T) {
	base := baseConfig()
	s := mcp_internal.NewMCPServer(base, &contract.MockSourceReader{})

	tool := s.GetTool("compute_weights")
	require.NotNil(t, tool)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "compute_weights",
			Arguments: map[string]any{
				"source1_year":             2025.0,
				"source3_year":             2025.0,
				"independence_adjustments": "dp=1,wd=1",
			},
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var payload struct {
		ReferenceYear int                 `json:"reference_year"`
		Weights       schema.WeightTriple `json:"weights"`
		Method        string              `json:"method"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &payload))
	assert.Equal(t, 2025, payload.ReferenceYear)
	assert.InDelta(t, 1.0/3.0, payload.Weights.W1, 1e-9)
	assert.InDelta(t, 1.0/3.0, payload.Weights.W3, 1e-9)
	assert.Contains(t, payload.Method, "source2=0.333")

	assert.Equal(t, 2019, base.Sources[0].Year, "base config must not change")
}

func TestMCPServerHandlers_AggregateSources(t *testing.T) {
	args := touchSources(t)
	tables := map[string]schema.RawTable{
		args["source1"].(string): {Headers: []string{"country", "iq"}, Rows: [][]string{{"Cuba", "100"}, {"Peru", "90"}}},
		args["source2"].(string): {Headers: []string{"country", "score"}, Rows: [][]string{{"Cuba", "110"}, {"Peru", "x"}}},
		args["source3"].(string): {Headers: []string{"pais", "score"}, Rows: [][]string{{"Cuba", "105"}, {"Chile", "95"}}},
	}

	mockReader := &contract.MockSourceReader{}
	for path, table := range tables {
		mockReader.On("ReadTable", path).Return(table, nil)
	}
	s := mcp_internal.NewMCPServer(baseConfig(), mockReader)

	tool := s.GetTool("aggregate_sources")
	require.NotNil(t, tool)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "aggregate_sources", Arguments: args},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, "unexpected error: %v", res.Content)
	mockReader.AssertExpectations(t)

	var report struct {
		Countries []string `json:"countries"`
		Simple    []struct {
			Country string   `json:"country"`
			Mean    *float64 `json:"mean"`
		} `json:"simple"`
		Warnings []map[string]any `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &report))
	assert.Equal(t, []string{"Cuba"}, report.Countries)
	require.Len(t, report.Simple, 1)
	require.NotNil(t, report.Simple[0].Mean)
	assert.Equal(t, 105.0, *report.Simple[0].Mean)
	assert.Len(t, report.Warnings, 1)
}
