package core

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/outwriter"
	"github.com/huangsam/concord/internal/source"
	"github.com/huangsam/concord/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testConfig returns a config with the default years and adjustments.
func testConfig(dir string, paths ...string) *contract.Config {
	cfg := &contract.Config{
		ReferenceYear:   2025,
		Adjustments:     schema.DefaultAdjustments(),
		Columns:         schema.DefaultColumnCandidates(),
		OutputDirectory: dir,
		OutputPrefix:    "concord",
	}
	years := contract.DefaultYears()
	for i, key := range schema.AllSources {
		path := string(key) + ".csv"
		if i < len(paths) {
			path = paths[i]
		}
		cfg.Sources[i] = contract.SourceConfig{Key: key, Path: path, Year: years[key]}
	}
	return cfg
}

func sampleTables() [3]schema.RawTable {
	return [3]schema.RawTable{
		{
			Headers: []string{"country", "iq", "url"},
			Rows:    [][]string{{"Cuba", "100", "u1"}, {"Peru", "90", ""}, {"Chile", "95", ""}},
		},
		{
			Headers: []string{"pais", "score"},
			Rows:    [][]string{{"Peru", "n/a"}, {"Cuba", "110"}},
		},
		{
			Headers: []string{"country", "score", "source_url"},
			Rows:    [][]string{{"Cuba", "105", "u3"}, {"Peru", "85", ""}},
		},
	}
}

// TestGetAggregateResults tests the full computation against mocked sources.
func TestGetAggregateResults(t *testing.T) {
	cfg := testConfig(t.TempDir())
	tables := sampleTables()

	mockReader := &contract.MockSourceReader{}
	for i, src := range cfg.Sources {
		mockReader.On("ReadTable", src.Path).Return(tables[i], nil)
	}

	result, err := GetAggregateResults(context.Background(), cfg, mockReader)
	require.NoError(t, err)
	mockReader.AssertExpectations(t)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.GeneratedAt.IsZero())
	assert.Equal(t, 2025, result.ReferenceYear)
	assert.Equal(t, []string{"Cuba", "Peru"}, result.Countries)
	assert.InDelta(t, 1.0, result.Weights.Sum(), 1e-12)
	assert.Contains(t, result.Method, "source2=0.714")

	assert.Equal(t, "iq", result.Mappings[0].Score)
	assert.Equal(t, "pais", result.Mappings[1].Country)
	assert.Equal(t, -1, result.Mappings[1].URLIndex)
	assert.Equal(t, "source_url", result.Mappings[2].URL)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, schema.Source2, result.Warnings[0].Source)
	assert.Equal(t, 2, result.Warnings[0].Row)

	require.Len(t, result.Simple, 2)
	assert.Equal(t, 105.0, result.Simple[0].Mean)
	assert.Equal(t, 87.5, result.Simple[1].Mean)
	assert.InDelta(t, 151.5/1.4, result.Weighted[0].Weighted, 1e-9)
	assert.True(t, math.IsNaN(result.Weighted[1].Weighted))
	assert.Equal(t, result.Method, result.Weighted[1].Method)
}

func TestGetAggregateResultsEmptySource(t *testing.T) {
	cfg := testConfig(t.TempDir())
	tables := sampleTables()

	mockReader := &contract.MockSourceReader{}
	mockReader.On("ReadTable", cfg.Sources[0].Path).Return(tables[0], nil)
	mockReader.On("ReadTable", cfg.Sources[1].Path).Return(schema.RawTable{}, nil)

	_, err := GetAggregateResults(context.Background(), cfg, mockReader)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySource)

	var emptyErr *EmptySourceError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, schema.Source2, emptyErr.Source)
	assert.Equal(t, cfg.Sources[1].Path, emptyErr.Path)

	mockReader.AssertExpectations(t)
	mockReader.AssertNotCalled(t, "ReadTable", cfg.Sources[2].Path)
}

func TestGetAggregateResultsHeaderOnlySource(t *testing.T) {
	cfg := testConfig(t.TempDir())
	tables := sampleTables()

	mockReader := &contract.MockSourceReader{}
	mockReader.On("ReadTable", cfg.Sources[0].Path).Return(tables[0], nil)
	mockReader.On("ReadTable", cfg.Sources[1].Path).Return(tables[1], nil)
	mockReader.On("ReadTable", cfg.Sources[2].Path).Return(schema.RawTable{Headers: []string{"country", "score"}}, nil)

	_, err := GetAggregateResults(context.Background(), cfg, mockReader)
	var emptyErr *EmptySourceError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, schema.Source3, emptyErr.Source)
	assert.Equal(t, "source3 (source3.csv) has no data rows", err.Error())
}

func TestGetAggregateResultsDisjointSources(t *testing.T) {
	cfg := testConfig(t.TempDir())
	countries := []string{"Cuba", "Peru", "Chile"}

	mockReader := &contract.MockSourceReader{}
	for i, src := range cfg.Sources {
		mockReader.On("ReadTable", src.Path).Return(schema.RawTable{
			Headers: []string{"country", "score"},
			Rows:    [][]string{{countries[i], "100"}, {"", "90"}},
		}, nil)
	}

	result, err := GetAggregateResults(context.Background(), cfg, mockReader)
	require.NoError(t, err)
	assert.Empty(t, result.Countries)
	assert.Empty(t, result.Simple)
	assert.Empty(t, result.Weighted)
	mockReader.AssertNumberOfCalls(t, "ReadTable", 3)
}

func TestGetAggregateResultsReadError(t *testing.T) {
	cfg := testConfig(t.TempDir())
	readErr := errors.New("disk on fire")

	mockReader := &contract.MockSourceReader{}
	mockReader.On("ReadTable", cfg.Sources[0].Path).Return(schema.RawTable{}, readErr)

	_, err := GetAggregateResults(context.Background(), cfg, mockReader)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "reading source1")
}

func TestGetAggregateResultsInvalidYearReadsNothing(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Sources[1].Year = 2026

	mockReader := &contract.MockSourceReader{}
	_, err := GetAggregateResults(context.Background(), cfg, mockReader)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYear)
	mockReader.AssertNotCalled(t, "ReadTable", mock.Anything)
}

func TestGetAggregateResultsCancelled(t *testing.T) {
	cfg := testConfig(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockReader := &contract.MockSourceReader{}
	_, err := GetAggregateResults(ctx, cfg, mockReader)
	assert.ErrorIs(t, err, context.Canceled)
	mockReader.AssertNotCalled(t, "ReadTable", mock.Anything)
}

func TestGetWeights(t *testing.T) {
	cfg := testConfig(t.TempDir())

	w, method, err := GetWeights(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1.4, w.W2, 1e-12)
	assert.Equal(t, "recency⋮independence weighting: source1=0.071⋮source2=0.714⋮source3=0.214", method)

	cfg.Adjustments = map[schema.SourceKey]float64{}
	_, _, err = GetWeights(cfg)
	assert.ErrorIs(t, err, ErrDegenerateWeight)
}

// TestExecuteAggregate tests that results flow to the writer.
func TestExecuteAggregate(t *testing.T) {
	tests := []struct {
		name  string
		table bool
	}{
		{"reports only", false},
		{"with table", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t.TempDir())
			cfg.Table = tt.table
			tables := sampleTables()

			mockReader := &contract.MockSourceReader{}
			for i, src := range cfg.Sources {
				mockReader.On("ReadTable", src.Path).Return(tables[i], nil)
			}
			mockWriter := &contract.MockReportWriter{}
			mockWriter.On("WriteReports", mock.AnythingOfType("*schema.AggregateResult"), cfg).Return([]string{"a", "b"}, nil)
			if tt.table {
				mockWriter.On("PrintTable", mock.AnythingOfType("*schema.AggregateResult"), cfg).Return(nil)
			}

			err := ExecuteAggregate(context.Background(), cfg, mockReader, mockWriter)
			require.NoError(t, err)

			mockReader.AssertExpectations(t)
			mockWriter.AssertExpectations(t)
			if !tt.table {
				mockWriter.AssertNotCalled(t, "PrintTable", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestExecuteAggregateWriterError(t *testing.T) {
	cfg := testConfig(t.TempDir())
	tables := sampleTables()

	mockReader := &contract.MockSourceReader{}
	for i, src := range cfg.Sources {
		mockReader.On("ReadTable", src.Path).Return(tables[i], nil)
	}
	mockWriter := &contract.MockReportWriter{}
	mockWriter.On("WriteReports", mock.Anything, mock.Anything).Return(nil, errors.New("no space left"))

	err := ExecuteAggregate(context.Background(), cfg, mockReader, mockWriter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing reports")
}

// TestExecuteAggregateFiles runs the real reader and writer against files on disk.
func TestExecuteAggregateFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "reports")

	inputs := []string{
		"country,iq,url\nCuba,100,https://a/cu\nPeru,90,https://a/pe\nChile,95,\n",
		"\ufeffpais,score\nCuba,110\nPeru,n/a\n",
		"country,score,source_url\nPeru,85,https://c/pe\nCuba,105,https://c/cu\n",
	}
	paths := make([]string, len(inputs))
	for i, text := range inputs {
		paths[i] = filepath.Join(inDir, string(schema.AllSources[i])+".csv")
		require.NoError(t, os.WriteFile(paths[i], []byte(text), 0o644))
	}

	cfg := testConfig(outDir, paths...)
	var out bytes.Buffer
	writer := outwriter.NewOutWriter()
	writer.Out = &out

	err := ExecuteAggregate(context.Background(), cfg, source.NewCSVReader(), writer)
	require.NoError(t, err)

	mean, err := os.ReadFile(filepath.Join(outDir, "concord_mean.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"country,score1,score2,score3,mean,url1,url2,url3\n"+
			"Cuba,100.00,110.00,105.00,105.00,https://a/cu,,https://c/cu\n"+
			"Peru,90.00,,85.00,87.50,https://a/pe,,https://c/pe\n",
		string(mean))

	weighted, err := os.ReadFile(filepath.Join(outDir, "concord_weighted.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(weighted), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(schema.WeightedHeaders, ","), lines[0])
	assert.Equal(t,
		"Cuba,100.00,110.00,105.00,105.00,108.21,0.071429,0.714286,0.214286,https://a/cu,,https://c/cu,"+
			"recency⋮independence weighting: source1=0.071⋮source2=0.714⋮source3=0.214",
		lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Peru,90.00,,85.00,87.50,,0.071429,"))

	assert.Contains(t, out.String(), filepath.Join(outDir, "concord_mean.csv"))
	assert.Contains(t, out.String(), filepath.Join(outDir, "concord_weighted.csv"))
}
