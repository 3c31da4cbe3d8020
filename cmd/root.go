package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/codestat/pkg/context"
	log2 "github.com/yeisme/codestat/pkg/utils/log"
	"github.com/yeisme/codestat/pkg/utils/version"
)

var (
	codestatCtx *context.CodestatContext
	log         log2.Logger

	// Global flags
	configPathFlag    string
	debugFlag         bool
	verboseFlag       bool
	quietFlag         bool
	versionEnableFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codestat",
	Short: "codestat counts lines and functions in source trees",
	Long: `codestat is a command line tool that scans a directory for C, C++, C#,
Java and Python sources, counts logical/blank/comment lines, extracts
function definitions and reports per-language statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			os.Exit(0)
		}
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ctx := context.InitCodestatContext(configPathFlag, debugFlag, verboseFlag, quietFlag)

		codestatCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "codestat", strings.Join(os.Args[1:], " "))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
}
