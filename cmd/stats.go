package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/codestat/pkg/analyzer"
	"github.com/yeisme/codestat/pkg/export"
	"github.com/yeisme/codestat/pkg/models"
	"github.com/yeisme/codestat/pkg/style"
	"github.com/yeisme/codestat/pkg/utils/watch"
)

var (
	// stats command flags
	statsLanguages []string
	statsBlank     bool
	statsComments  bool
	statsFormat    string
	statsOutput    string
	statsWatch     bool
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Analyze a directory and report per-language statistics",
	Long: `
Scan a directory tree, classify every supported source file and report
per-language line and function statistics.

Examples:
  # Analyze the current directory and print a table
  codestat stats

  # Analyze ./src counting blank and comment lines too
  codestat stats ./src --blank --comments

  # Only Java and Python, exported as CSV
  codestat stats -l java,python -f csv -o report.csv

  # XLSX workbook (requires --output, the payload is binary)
  codestat stats -f xlsx -o report.xlsx

  # Re-run the analysis whenever a file changes
  codestat stats --watch

Notes:
  - Supported languages: C, C++, C#, Java, Python.
  - The directory must live inside the configured workspace.
  - Formats: table (default), json, yaml, toml, md, csv, xlsx.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		opts, err := buildOptions(statsLanguages)
		if err != nil {
			return err
		}

		format := statsFormat
		if format == "" {
			format = codestatCtx.Config.Stats.Format
		}
		// 非法格式在任何目录遍历之前就被拒绝
		if !validFormat(format) {
			return fmt.Errorf("unsupported format %q (supported: table, json, yaml, toml, md, csv, xlsx)", format)
		}
		if format == "xlsx" && statsOutput == "" {
			return fmt.Errorf("format xlsx is binary, use --output to write it to a file")
		}

		run := func() error {
			return runStats(cmd, root, opts, format)
		}
		if err := run(); err != nil {
			return err
		}

		if statsWatch {
			return watch.Run(root, codestatCtx.Config.App.Watch, *log, run)
		}
		return nil
	},
}

// validFormat 判断格式名是否受支持（含终端格式与导出格式）
func validFormat(format string) bool {
	switch format {
	case "", "table", "json", "yaml", "yml", "toml", "md", "markdown", "csv", "xlsx":
		return true
	}
	return false
}

// buildOptions 将命令行旗标与配置合并为一次分析的选项
func buildOptions(languages []string) (models.AnalysisOptions, error) {
	cfg := codestatCtx.Config.Stats

	opts := models.AnalysisOptions{
		IncludeBlankLines:   statsBlank || cfg.IncludeBlankLines,
		IncludeCommentLines: statsComments || cfg.IncludeCommentLines,
		Workspace:           cfg.Workspace,
	}
	for _, raw := range languages {
		lang, ok := analyzer.ParseLanguage(raw)
		if !ok {
			return opts, fmt.Errorf("unsupported language %q (supported: %s)",
				raw, joinLanguages(analyzer.SupportedLanguages()))
		}
		opts.Languages = append(opts.Languages, lang)
	}
	return opts, nil
}

func runStats(cmd *cobra.Command, root string, opts models.AnalysisOptions, format string) error {
	result := analyzer.New(*log).Analyze(root, opts)

	if !result.WithinWorkspace {
		return fmt.Errorf("directory %s is outside the workspace, refusing to analyze", root)
	}
	if !result.DirectoryExists {
		return fmt.Errorf("directory %s does not exist", root)
	}

	out := cmd.OutOrStdout()

	switch format {
	case "table", "":
		return printStatsTable(out, result)
	case "json":
		payload, err := export.RenderJSON(result)
		if err != nil {
			return err
		}
		if statsOutput != "" {
			return writeReport(statsOutput, payload)
		}
		return style.PrintJSON(out, payload)
	case "yaml", "yml":
		if statsOutput != "" {
			payload, err := style.FormatYAML(result)
			if err != nil {
				return err
			}
			return writeReport(statsOutput, []byte(payload))
		}
		return style.PrintYAML(out, result)
	case "toml":
		if statsOutput != "" {
			payload, err := style.FormatTOML(result)
			if err != nil {
				return err
			}
			return writeReport(statsOutput, []byte(payload))
		}
		return style.PrintTOML(out, result)
	case "md", "markdown":
		md := buildStatsMarkdown(result)
		if statsOutput != "" {
			return writeReport(statsOutput, []byte(md))
		}
		return style.RenderMarkdown(out, md, 0)
	case "csv":
		payload, err := export.Render(result, export.FormatCSV)
		if err != nil {
			return err
		}
		if statsOutput != "" {
			return writeReport(statsOutput, payload)
		}
		_, err = out.Write(payload)
		return err
	case "xlsx":
		payload, err := export.Render(result, export.FormatXLSX)
		if err != nil {
			return err
		}
		return writeReport(statsOutput, payload)
	default:
		return fmt.Errorf("unsupported format %q (supported: table, json, yaml, toml, md, csv, xlsx)", format)
	}
}

// printStatsTable 在终端渲染统计表格与摘要行
func printStatsTable(w io.Writer, result *models.AnalysisResult) error {
	headers, rows := statsTableData(result)
	if err := style.PrintTable(w, headers, rows, 0); err != nil {
		return err
	}

	merged := analyzer.MergedSummary(result)
	fmt.Fprintf(w, "Total: %d files, %d lines, %d functions\n",
		merged.FileCount, merged.LineCount, merged.Functions.Count)

	if longest := analyzer.LongestFunction(result); longest != nil {
		fmt.Fprintf(w, "Longest function:  %s (%s, %s:%d, %d lines)\n",
			longest.Name, longest.Language, longest.FilePath, longest.StartLine, longest.Length)
	}
	if shortest := analyzer.ShortestFunction(result); shortest != nil {
		fmt.Fprintf(w, "Shortest function: %s (%s, %s:%d, %d lines)\n",
			shortest.Name, shortest.Language, shortest.FilePath, shortest.StartLine, shortest.Length)
	}
	return nil
}

// statsTableData 构造表头与数据行，可选列只在对应口径开启时出现
func statsTableData(result *models.AnalysisResult) ([]string, [][]string) {
	headers := []string{"Language", "Files", "Lines"}
	if result.IncludeBlankLines {
		headers = append(headers, "Blank")
	}
	if result.IncludeCommentLines {
		headers = append(headers, "Comments")
	}
	headers = append(headers, "Functions", "Min", "Max", "Avg", "Median")

	var rows [][]string
	for _, lang := range sortedSummaryLanguages(result) {
		s := result.LanguageSummaries[lang]
		row := []string{string(lang), strconv.Itoa(s.FileCount), strconv.Itoa(s.LineCount)}
		if result.IncludeBlankLines {
			row = append(row, strconv.Itoa(s.BlankLineCount))
		}
		if result.IncludeCommentLines {
			row = append(row, strconv.Itoa(s.CommentLineCount))
		}
		row = append(row,
			strconv.Itoa(s.Functions.Count),
			strconv.Itoa(s.Functions.Min),
			strconv.Itoa(s.Functions.Max),
			strconv.FormatFloat(s.Functions.Average, 'f', 2, 64),
			strconv.FormatFloat(s.Functions.Median, 'f', 2, 64),
		)
		rows = append(rows, row)
	}
	return headers, rows
}

// buildStatsMarkdown 将统计结果组织为 Markdown 文档
func buildStatsMarkdown(result *models.AnalysisResult) string {
	headers, rows := statsTableData(result)

	var b strings.Builder
	b.WriteString("# Code Statistics\n\n")
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	merged := analyzer.MergedSummary(result)
	b.WriteString(fmt.Sprintf("\nTotal: **%d** files, **%d** lines, **%d** functions\n",
		merged.FileCount, merged.LineCount, merged.Functions.Count))
	return b.String()
}

// sortedSummaryLanguages 返回按字典序排列的语言键
func sortedSummaryLanguages(result *models.AnalysisResult) []models.Language {
	langs := make([]models.Language, 0, len(result.LanguageSummaries))
	for lang := range result.LanguageSummaries {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

func joinLanguages(langs []models.Language) string {
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// writeReport 将报告字节写入目标文件
func writeReport(path string, payload []byte) error {
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("bytes", len(payload)).Msg("report written")
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringSliceVarP(&statsLanguages, "languages", "l", nil, "restrict the analysis to these languages (e.g. java,python)")
	statsCmd.Flags().BoolVar(&statsBlank, "blank", false, "count blank lines")
	statsCmd.Flags().BoolVar(&statsComments, "comments", false, "count comment lines")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "output format: table, json, yaml, toml, md, csv, xlsx")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "write the report to a file instead of stdout")
	statsCmd.Flags().BoolVarP(&statsWatch, "watch", "w", false, "re-run the analysis when files change")
}
