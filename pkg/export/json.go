package export

import (
	"encoding/json"

	"github.com/yeisme/codestat/pkg/models"
)

// jsonReport 是 JSON 导出的顶层对象
type jsonReport struct {
	TotalLines        int            `json:"totalLines"`
	TotalBlankLines   *int           `json:"totalBlankLines,omitempty"`
	TotalCommentLines *int           `json:"totalCommentLines,omitempty"`
	Languages         []jsonLanguage `json:"languages"`
}

// jsonLanguage 与 CSV 的列一一对应；可选列在口径关闭时整体省略
type jsonLanguage struct {
	Language              string  `json:"language"`
	Files                 int     `json:"files"`
	Lines                 int     `json:"lines"`
	BlankLines            *int    `json:"blankLines,omitempty"`
	CommentLines          *int    `json:"commentLines,omitempty"`
	Functions             int     `json:"functions"`
	MinFunctionLength     int     `json:"minFunctionLength"`
	MaxFunctionLength     int     `json:"maxFunctionLength"`
	AverageFunctionLength float64 `json:"averageFunctionLength"`
	MedianFunctionLength  float64 `json:"medianFunctionLength"`
}

// RenderJSON 把结果渲染成 JSON
// 字符串转义由 encoding/json 保证（控制字符、引号与反斜杠），
// 语言顺序与 CSV 一致
func RenderJSON(result *models.AnalysisResult) ([]byte, error) {
	report := jsonReport{
		TotalLines: result.TotalLines,
		Languages:  make([]jsonLanguage, 0, len(result.LanguageSummaries)),
	}
	if result.IncludeBlankLines {
		report.TotalBlankLines = intPtr(result.TotalBlankLines)
	}
	if result.IncludeCommentLines {
		report.TotalCommentLines = intPtr(result.TotalCommentLines)
	}

	for _, lang := range sortedLanguages(result) {
		s := result.LanguageSummaries[lang]
		entry := jsonLanguage{
			Language:              string(lang),
			Files:                 s.FileCount,
			Lines:                 s.LineCount,
			Functions:             s.Functions.Count,
			MinFunctionLength:     s.Functions.Min,
			MaxFunctionLength:     s.Functions.Max,
			AverageFunctionLength: s.Functions.Average,
			MedianFunctionLength:  s.Functions.Median,
		}
		if result.IncludeBlankLines {
			entry.BlankLines = intPtr(s.BlankLineCount)
		}
		if result.IncludeCommentLines {
			entry.CommentLines = intPtr(s.CommentLineCount)
		}
		report.Languages = append(report.Languages, entry)
	}

	return json.MarshalIndent(report, "", "  ")
}

func intPtr(v int) *int { return &v }
