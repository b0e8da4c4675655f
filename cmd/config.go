package cmd

import (
	"github.com/huangsam/concord/internal/contract"
	"github.com/spf13/cobra"
)

// configCmd groups config file helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the concord config file.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// configInitCmd writes a config file holding the defaults.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every option at its default.",
	Long: `Write a YAML config file with every option at its default value.
Concord reads .concord.yaml from the current directory or $HOME, or the file
given with --config. Flags and CONCORD_* environment variables take precedence.

Examples:
  concord config init
  concord config init --path ~/.concord.yaml --force`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		path, _ := cmd.Flags().GetString("path")
		force, _ := cmd.Flags().GetBool("force")
		if err := contract.WriteSampleConfig(path, force); err != nil {
			contract.LogFatal("Cannot write config file", err)
		}
		cmd.Printf("Wrote config: %s\n", path)
	},
}
