package analyzer

import (
	"bufio"
	"os"

	"github.com/rs/zerolog"
	"github.com/yeisme/codestat/pkg/models"
)

// Analyzer 执行一次目录树的源代码统计
// 单次调用同步完成，不持有长生命周期资源；各调用之间不共享可变状态，
// 因此并发调用无需额外加锁
type Analyzer struct {
	logger zerolog.Logger
}

// New 创建分析器；日志器显式注入，分析本身保持为输入的纯函数
func New(logger zerolog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze 校验根目录、遍历文件并返回聚合结果
//
// 包含检查失败（WithinWorkspace=false）或目录不存在
// （DirectoryExists=false）时快速返回全零结果，不发生任何遍历；
// 这两种情况是结果字段而不是错误，由调用方决定如何映射状态
func (a *Analyzer) Analyze(root string, opts models.AnalysisOptions) *models.AnalysisResult {
	result := &models.AnalysisResult{
		LanguageSummaries:   make(map[models.Language]*models.LanguageSummary),
		IncludedLanguages:   opts.Languages,
		IncludeBlankLines:   opts.IncludeBlankLines,
		IncludeCommentLines: opts.IncludeCommentLines,
	}

	outcome := resolveRoot(root, opts.Workspace)
	result.WithinWorkspace = outcome.withinWorkspace
	result.DirectoryExists = outcome.directoryExists
	if !outcome.withinWorkspace || !outcome.directoryExists {
		a.logger.Debug().
			Str("root", root).
			Bool("within_workspace", outcome.withinWorkspace).
			Bool("directory_exists", outcome.directoryExists).
			Msg("analysis rejected by path guard")
		return result
	}

	walkFiles(outcome.path, func(path string) {
		a.visitFile(path, result, opts)
	})

	finalizeResult(result, opts)

	a.logger.Debug().
		Str("root", outcome.path).
		Int("total_lines", result.TotalLines).
		Int("languages", len(result.LanguageSummaries)).
		Msg("analysis finished")
	return result
}

// visitFile 对单个文件跑整条流水线：语言识别、行分类、函数提取、聚合
func (a *Analyzer) visitFile(path string, result *models.AnalysisResult, opts models.AnalysisOptions) {
	lang, ok := detectLanguage(path)
	if !ok || !opts.WantsLanguage(lang) {
		return
	}

	lines, err := readLines(path)
	if err != nil {
		// 单文件不可读不中断整次分析
		a.logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
		return
	}

	tally := tallyLines(lines, lang)
	funcs := ExtractFunctions(lines, lang, path)
	accumulateFile(result, lang, tally, funcs, opts)
}

// ExtractFunctions 按语言家族选择提取策略，输出统一的函数记录
func ExtractFunctions(lines []string, lang models.Language, filePath string) []models.FunctionRecord {
	if isBraceLanguage(lang) {
		return extractBraceFunctions(lines, lang, filePath)
	}
	return extractPythonFunctions(lines, filePath)
}

// readLines 按字节逐行读取文件（不做编码转换）
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	// 提高最大 token 大小，避免超长行导致扫描失败
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
