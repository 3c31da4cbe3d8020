package analyzer

import (
	"sort"

	"github.com/yeisme/codestat/pkg/models"
)

// accumulateFile 把单文件的行分类与函数记录并入对应语言的汇总
func accumulateFile(result *models.AnalysisResult, lang models.Language, t lineTally, funcs []models.FunctionRecord, opts models.AnalysisOptions) {
	s := result.Summary(lang)
	s.FileCount++

	s.LineCount += t.logical
	result.TotalLines += t.logical
	if opts.IncludeCommentLines {
		// 注释行计入注释计数，同时按口径计入行总数
		s.CommentLineCount += t.comment
		s.LineCount += t.comment
		result.TotalCommentLines += t.comment
		result.TotalLines += t.comment
	}
	if opts.IncludeBlankLines {
		s.BlankLineCount += t.blank
		result.TotalBlankLines += t.blank
	}

	s.Functions.Details = append(s.Functions.Details, funcs...)
}

// finalizeResult 在遍历结束后对每种语言定型函数分布统计
//
// 长度切片升序排序后：count/min/max 取自两端，average 为算术平均，
// median 取中位（偶数个取中间两数均值）没有函数的语言得到全零统计
// 而不是缺失条目；显式请求过的语言即使没有匹配文件也会出现在结果里
func finalizeResult(result *models.AnalysisResult, opts models.AnalysisOptions) {
	for _, lang := range opts.Languages {
		result.Summary(lang)
	}

	for _, s := range result.LanguageSummaries {
		finalizeFunctionStats(&s.Functions)
	}
}

func finalizeFunctionStats(fs *models.FunctionStats) {
	if len(fs.Details) == 0 {
		return
	}

	lengths := make([]int, len(fs.Details))
	for i, d := range fs.Details {
		lengths[i] = d.Length
	}
	sort.Ints(lengths)

	fs.Count = len(lengths)
	fs.Min = lengths[0]
	fs.Max = lengths[len(lengths)-1]

	sum := 0
	for _, l := range lengths {
		sum += l
	}
	fs.Average = float64(sum) / float64(len(lengths))

	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		fs.Median = float64(lengths[mid-1]+lengths[mid]) / 2.0
	} else {
		fs.Median = float64(lengths[mid])
	}
}

// LongestFunction 返回整个结果中最长的函数记录，没有任何函数时返回 nil
func LongestFunction(result *models.AnalysisResult) *models.FunctionRecord {
	var best *models.FunctionRecord
	for _, s := range result.LanguageSummaries {
		for i := range s.Functions.Details {
			d := &s.Functions.Details[i]
			if best == nil || d.Length > best.Length {
				best = d
			}
		}
	}
	return best
}

// ShortestFunction 返回整个结果中最短的函数记录，没有任何函数时返回 nil
func ShortestFunction(result *models.AnalysisResult) *models.FunctionRecord {
	var best *models.FunctionRecord
	for _, s := range result.LanguageSummaries {
		for i := range s.Functions.Details {
			d := &s.Functions.Details[i]
			if best == nil || d.Length < best.Length {
				best = d
			}
		}
	}
	return best
}

// MergedSummary 把若干语言的汇总合并成一个（例如 C 与 C++ 合并成 C/C++ 视图）
// 不传语言时合并全部；只合并行级计数与函数个数，长度分布保持各语言独立
func MergedSummary(result *models.AnalysisResult, langs ...models.Language) models.LanguageSummary {
	if len(langs) == 0 {
		for lang := range result.LanguageSummaries {
			langs = append(langs, lang)
		}
	}
	var merged models.LanguageSummary
	for _, lang := range langs {
		s, ok := result.LanguageSummaries[lang]
		if !ok {
			continue
		}
		merged.FileCount += s.FileCount
		merged.LineCount += s.LineCount
		merged.BlankLineCount += s.BlankLineCount
		merged.CommentLineCount += s.CommentLineCount
		merged.Functions.Count += s.Functions.Count
	}
	return merged
}
