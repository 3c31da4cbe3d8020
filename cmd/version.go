package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/codestat/pkg/style"
	"github.com/yeisme/codestat/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for codestat.

Examples:
  # Show short version info (default)
  codestat version

  # Show detailed version info
  codestat version --detailed

  # Show version info in JSON format
  codestat version --json`,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		if versionJSON {
			if err := style.PrintJSON(out, version.GetVersion()); err != nil {
				cmd.PrintErrf("Error formatting JSON: %v\n", err)
			}
		} else if versionDetailed {
			fmt.Fprintln(out, version.GetVersionString())
		} else {
			fmt.Fprintln(out, version.GetShortVersionString())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
