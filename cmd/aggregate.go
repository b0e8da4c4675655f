package cmd

import (
	"github.com/huangsam/concord/core"
	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/outwriter"
	"github.com/huangsam/concord/internal/source"
	"github.com/spf13/cobra"
)

// aggregateCmd writes the simple and weighted reports.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Align three sources and write the mean and weighted reports.",
	Long: `Read three per-country CSV sources, keep the countries present in all of them,
and write two reports in the project CSV dialect:

- <prefix>_mean.csv: per-source scores and their mean (missing scores skipped)
- <prefix>_weighted.csv: the same plus a recency-and-independence weighted score

Column names are discovered per source (country/pais, score/iq, url/source_url/fuente_url).
Weights are 1/(1+(reference year - source year)) times the independence adjustment,
normalized to sum to 1.

Examples:
  # Aggregate with default years and adjustments
  concord aggregate --source1 dp.csv --source2 iit.csv --source3 wd.csv

  # Override years and adjustments, write into out/
  concord aggregate --source1 a.csv --source2 b.csv --source3 c.csv \
    --source1-year 2018 --reference-year 2025 \
    --independence-adjustments "dp=0.5,iit=1,wd=0.8" -o out

  # Also export JSON and parquet, and print a table
  concord aggregate --source1 a.csv --source2 b.csv --source3 c.csv --export json,parquet --table`,
	Args:    cobra.NoArgs,
	PreRunE: setupWithSources,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAggregate(rootCtx, cfg, source.NewCSVReader(), outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot aggregate sources", err)
		}
	},
}
