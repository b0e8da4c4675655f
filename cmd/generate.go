package cmd

import (
	"path/filepath"

	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/dialect"
	"github.com/huangsam/concord/internal/sample"
	"github.com/spf13/cobra"
)

// generateCmd writes one of the example tables.
var generateCmd = &cobra.Command{
	Use:   "generate SCHEMA PATH",
	Short: "Write an example table in the project CSV dialect.",
	Long: `Write a small example table for one of the fixed schemas:

- price_by_car: Country, Region, Price
- dishes: Dish, Origin, Ingredients (a list joined with '⋮'), Price

Examples:
  concord generate dishes dishes.csv`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: sample.Names(),
	Run: func(cmd *cobra.Command, args []string) {
		if err := sample.Generate(dialect.Default, args[0], args[1]); err != nil {
			contract.LogFatal("Cannot generate example table", err)
		}
		abs, err := filepath.Abs(args[1])
		if err != nil {
			abs = args[1]
		}
		cmd.Printf("Wrote %s example: %s\n", args[0], abs)
	},
}
