package cmd

import (
	"github.com/huangsam/concord/core"
	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/outwriter"
	"github.com/spf13/cobra"
)

// weightsCmd prints the normalized weights without reading any source.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the normalized source weights for the configured years.",
	Long: `Compute the recency-and-independence weights exactly as 'aggregate' would,
without reading any file.

Examples:
  concord weights
  concord weights --reference-year 2030 --independence-adjustments "wd=1"`,
	Args:    cobra.NoArgs,
	PreRunE: setupWithoutSources,
	Run: func(_ *cobra.Command, _ []string) {
		weights, method, err := core.GetWeights(cfg)
		if err != nil {
			contract.LogFatal("Cannot compute weights", err)
		}
		if err := outwriter.NewOutWriter().WriteWeights(weights, method, cfg); err != nil {
			contract.LogFatal("Cannot print weights", err)
		}
	},
}
