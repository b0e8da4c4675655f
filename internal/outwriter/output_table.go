package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeWeightedTable generates and writes the human-readable weighted report.
func writeWeightedTable(writer io.Writer, result *schema.AggregateResult, cfg *contract.Config) error {
	fmtScore, fmtWeight := createFormatters(schema.ScorePrecision, schema.WeightPrecision)
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"#", "Country", "Score1", "Score2", "Score3", "Mean", "Weighted"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	width := GetMaxTableCountryWidth(cfg)
	var data [][]string
	for i, r := range result.Weighted {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(r.Country, width),
			fmtScore(r.Score1),
			fmtScore(r.Score2),
			fmtScore(r.Score3),
			fmtScore(r.Mean),
			fmtScore(r.Weighted),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	w := result.Weights
	if _, err := fmt.Fprintf(writer, "Weights: %s=%s %s=%s %s=%s (reference year %d)\n",
		schema.Source1, fmtWeight(w.W1),
		schema.Source2, fmtWeight(w.W2),
		schema.Source3, fmtWeight(w.W3),
		result.ReferenceYear); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Aligned %d countries across 3 sources with %d parse warnings\n",
		len(result.Countries), len(result.Warnings)); err != nil {
		return err
	}
	return nil
}
