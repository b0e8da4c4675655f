package cmd

import (
	"strings"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/dialect"
	"github.com/huangsam/concord/internal/outwriter"
	"github.com/huangsam/concord/internal/source"
	"github.com/spf13/cobra"
)

// checkCmd runs the advisory header checks.
var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report long or missing headers in CSV files (advisory only).",
	Long: `Inspect the header row of each file and report headers longer than the
recommended length and required headers that are missing. The exit status is
always 0 for readable arguments; the checks never block.

Examples:
  concord check report_mean.csv
  concord check --require country,score data/*.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: setupWithoutSources,
	Run: func(cmd *cobra.Command, args []string) {
		requireStr, _ := cmd.Flags().GetString("require")
		maxLen, _ := cmd.Flags().GetInt("max-header-length")

		var required []string
		for part := range strings.SplitSeq(requireStr, ",") {
			if part = strings.TrimSpace(part); part != "" {
				required = append(required, part)
			}
		}

		reader := source.NewCSVReader()
		results := make([]outwriter.CheckResult, 0, len(args))
		for _, path := range args {
			table, err := reader.ReadTable(path)
			if err != nil {
				results = append(results, outwriter.CheckResult{Path: path, Err: err})
				continue
			}
			warnings := dialect.WarnLongHeaders(table.Headers, maxLen)
			warnings = append(warnings, dialect.CheckRequired(table.Headers, required)...)
			results = append(results, outwriter.CheckResult{Path: path, Warnings: warnings})
		}

		if err := outwriter.NewOutWriter().WriteCheckResults(results, cfg); err != nil {
			contract.LogFatal("Cannot print check results", err)
		}
	},
}
