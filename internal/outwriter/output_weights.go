package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// CheckResult holds the header advisories of one checked file.
type CheckResult struct {
	Path     string
	Warnings []string
	Err      error // Set when the file could not be read
}

// WriteWeights prints the per-source weighting inputs and the normalized weights.
func (ow *OutWriter) WriteWeights(weights schema.WeightTriple, method string, cfg *contract.Config) error {
	return writeWeightsTable(ow.Out, weights, method, cfg)
}

func writeWeightsTable(writer io.Writer, weights schema.WeightTriple, method string, cfg *contract.Config) error {
	_, fmtWeight := createFormatters(schema.ScorePrecision, schema.WeightPrecision)
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Source", "Year", "Adjustment", "Weight"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	values := weights.Values()
	var data [][]string
	for i, src := range cfg.Sources {
		data = append(data, []string{
			string(src.Key),
			fmt.Sprintf("%d", src.Year),
			fmt.Sprintf("%g", cfg.Adjustments[src.Key]),
			fmtWeight(values[i]),
		})
	}
	data = append(data, []string{"total", "", "", fmtWeight(weights.Sum())})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Reference year: %d\n", cfg.ReferenceYear); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Method: %s\n", method)
	return err
}

// WriteCheckResults prints one line per advisory, or an OK line for a clean file.
// Advisories never fail the command.
func (ow *OutWriter) WriteCheckResults(results []CheckResult, cfg *contract.Config) error {
	warn := contract.GetColorLabel(contract.WarnValue, cfg.UseColors)
	ok := contract.GetColorLabel(contract.OKValue, cfg.UseColors)
	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(ow.Out, "%s %s: %v\n", warn, r.Path, r.Err); err != nil {
				return err
			}
			continue
		}
		if len(r.Warnings) == 0 {
			if _, err := fmt.Fprintf(ow.Out, "%s %s\n", ok, r.Path); err != nil {
				return err
			}
			continue
		}
		for _, w := range r.Warnings {
			if _, err := fmt.Fprintf(ow.Out, "%s %s: %s\n", warn, r.Path, w); err != nil {
				return err
			}
		}
	}
	return nil
}
