// Package cmd defines the command-line interface for concord.
package cmd

import (
	"github.com/huangsam/concord/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the config subcommands to the parent config command
	configCmd.AddCommand(configInitCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source1", "", "Path to the first source CSV")
	rootCmd.PersistentFlags().String("source2", "", "Path to the second source CSV")
	rootCmd.PersistentFlags().String("source3", "", "Path to the third source CSV")
	rootCmd.PersistentFlags().Int("source1-year", contract.DefaultSource1Year, "Publication year of source1")
	rootCmd.PersistentFlags().Int("source2-year", contract.DefaultSource2Year, "Publication year of source2")
	rootCmd.PersistentFlags().Int("source3-year", contract.DefaultSource3Year, "Publication year of source3")
	rootCmd.PersistentFlags().Int("reference-year", 0, "Year recency is measured against (0 = current year)")
	rootCmd.PersistentFlags().String("independence-adjustments", contract.DefaultAdjustments, "Per-source independence adjustments (format: 'source1=0.7,source2=1.0,source3=0.6')")
	rootCmd.PersistentFlags().StringP("output-directory", "o", contract.DefaultOutputDirectory, "Directory the reports are written to")
	rootCmd.PersistentFlags().String("output-prefix", contract.DefaultOutputPrefix, "File name prefix of the reports")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of aggregateCmd to Viper
	aggregateCmd.Flags().String("export", "", "Additional exports: json, parquet (comma-separated)")
	aggregateCmd.Flags().Bool("table", false, "Print the weighted report as a table")
	aggregateCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(aggregateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding aggregate flags", err)
	}

	// Flags below are read directly from the command, not through Viper
	checkCmd.Flags().String("require", "", "Comma-separated headers that must be present")
	checkCmd.Flags().Int("max-header-length", 12, "Recommended maximum header length")
	packCmd.Flags().Bool("no-root", false, "Store entries relative to the folder instead of under its name")
	configInitCmd.Flags().String("path", contract.DefaultConfigFile, "Where to write the config file")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
