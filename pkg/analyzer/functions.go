package analyzer

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/yeisme/codestat/pkg/models"
)

// CollectFunctions 汇集结果中所有语言的函数记录，按长度降序排列，
// 长度相同时按名称升序，保证输出顺序稳定
func CollectFunctions(result *models.AnalysisResult) []models.FunctionRecord {
	var all []models.FunctionRecord
	for _, s := range result.LanguageSummaries {
		all = append(all, s.Functions.Details...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Length != all[j].Length {
			return all[i].Length > all[j].Length
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// FilterFunctions 用模糊匹配筛选函数名，pattern 为空时原样返回
func FilterFunctions(records []models.FunctionRecord, pattern string) []models.FunctionRecord {
	if pattern == "" {
		return records
	}
	filtered := make([]models.FunctionRecord, 0, len(records))
	for _, r := range records {
		if fuzzy.MatchFold(pattern, r.Name) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
