package cmd

import (
	"github.com/huangsam/concord/internal/contract"
	"github.com/huangsam/concord/internal/pack"
	"github.com/spf13/cobra"
)

// packCmd zips an output folder.
var packCmd = &cobra.Command{
	Use:   "pack FOLDER ZIP",
	Short: "Package a folder into a zip archive.",
	Long: `Zip every file under FOLDER into ZIP. Entries are stored under the folder's
own name unless --no-root is given.

Examples:
  concord pack out reports.zip`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		noRoot, _ := cmd.Flags().GetBool("no-root")
		if err := pack.ZipFolder(args[0], args[1], !noRoot); err != nil {
			contract.LogFatal("Cannot package folder", err)
		}
		cmd.Printf("Wrote archive: %s\n", args[1])
	},
}
