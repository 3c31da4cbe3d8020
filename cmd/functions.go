package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yeisme/codestat/pkg/analyzer"
	"github.com/yeisme/codestat/pkg/style"
)

var (
	// functions command flags
	functionsLanguages []string
	functionsFilter    string
	functionsTop       int
)

// functionsCmd represents the functions command
var functionsCmd = &cobra.Command{
	Use:   "functions [dir]",
	Short: "List the functions discovered in a directory",
	Long: `
List every function definition discovered in a directory, sorted by
length (longest first).

Examples:
  # List all functions in the current directory
  codestat functions

  # Fuzzy-match function names against "handler"
  codestat functions --filter handler

  # The ten longest Python functions in ./src
  codestat functions ./src -l python --top 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		opts, err := buildOptions(functionsLanguages)
		if err != nil {
			return err
		}

		result := analyzer.New(*log).Analyze(root, opts)
		if !result.WithinWorkspace {
			return fmt.Errorf("directory %s is outside the workspace, refusing to analyze", root)
		}
		if !result.DirectoryExists {
			return fmt.Errorf("directory %s does not exist", root)
		}

		records := analyzer.CollectFunctions(result)
		if functionsFilter != "" {
			records = analyzer.FilterFunctions(records, functionsFilter)
		}
		if functionsTop > 0 && len(records) > functionsTop {
			records = records[:functionsTop]
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No functions found")
			return nil
		}

		headers := []string{"Name", "Language", "File", "Line", "Length"}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				r.Name, string(r.Language), r.FilePath,
				strconv.Itoa(r.StartLine), strconv.Itoa(r.Length),
			})
		}
		return style.PrintTable(out, headers, rows, 0)
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)

	functionsCmd.Flags().StringSliceVarP(&functionsLanguages, "languages", "l", nil, "restrict the analysis to these languages (e.g. java,python)")
	functionsCmd.Flags().StringVar(&functionsFilter, "filter", "", "fuzzy-match function names against this pattern")
	functionsCmd.Flags().IntVar(&functionsTop, "top", 0, "only show the N longest functions (0 = all)")
}
