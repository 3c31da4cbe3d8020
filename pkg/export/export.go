// Package export 把分析结果渲染成三种字节精确的导出格式：
// CSV、JSON 和手工组装的 XLSX（不借助任何归档库的 ZIP 容器）
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// Format 是导出格式选择器
type Format string

// 支持的导出格式
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// MIME 类型按格式对应的响应 Content-Type
var contentTypes = map[Format]string{
	FormatCSV:  "text/csv",
	FormatJSON: "application/json",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ParseFormat 校验格式选择器；非法格式在任何分析开始前就被拒绝，
// 避免白跑一次昂贵的目录遍历
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
	return f, nil
}

// ContentType 返回格式对应的 MIME 类型
func (f Format) ContentType() string {
	return contentTypes[f]
}

// Render 按格式把结果序列化为字节流
func Render(result *models.AnalysisResult, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return RenderCSV(result), nil
	case FormatJSON:
		return RenderJSON(result)
	case FormatXLSX:
		return RenderXLSX(result), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", string(format))
	}
}

// sortedLanguages 返回结果中语言键的升序序列；
// CSV、JSON 与 XLSX 共用同一排序，保证三种导出列出相同的语言集合
func sortedLanguages(result *models.AnalysisResult) []models.Language {
	langs := make([]models.Language, 0, len(result.LanguageSummaries))
	for lang := range result.LanguageSummaries {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// columnHeaders 返回与选项匹配的列集合，三种导出共用
func columnHeaders(result *models.AnalysisResult) []string {
	headers := []string{"Language", "Files", "Lines"}
	if result.IncludeBlankLines {
		headers = append(headers, "BlankLines")
	}
	if result.IncludeCommentLines {
		headers = append(headers, "CommentLines")
	}
	return append(headers,
		"Functions",
		"MinFunctionLength",
		"MaxFunctionLength",
		"AverageFunctionLength",
		"MedianFunctionLength",
	)
}

// rowValues 按 columnHeaders 的列序生成一行的字符串值
func rowValues(lang models.Language, s *models.LanguageSummary, result *models.AnalysisResult) []string {
	row := []string{string(lang), fmt.Sprintf("%d", s.FileCount), fmt.Sprintf("%d", s.LineCount)}
	if result.IncludeBlankLines {
		row = append(row, fmt.Sprintf("%d", s.BlankLineCount))
	}
	if result.IncludeCommentLines {
		row = append(row, fmt.Sprintf("%d", s.CommentLineCount))
	}
	return append(row,
		fmt.Sprintf("%d", s.Functions.Count),
		fmt.Sprintf("%d", s.Functions.Min),
		fmt.Sprintf("%d", s.Functions.Max),
		fmt.Sprintf("%.2f", s.Functions.Average),
		fmt.Sprintf("%.2f", s.Functions.Median),
	)
}
