package analyzer

import (
	"testing"

	"github.com/yeisme/codestat/pkg/models"
)

func statsOf(lengths ...int) models.FunctionStats {
	fs := models.FunctionStats{}
	for _, l := range lengths {
		fs.Details = append(fs.Details, models.FunctionRecord{Name: "f", Length: l})
	}
	finalizeFunctionStats(&fs)
	return fs
}

func Test_finalizeFunctionStats_MedianOdd(t *testing.T) {
	fs := statsOf(9, 3, 5)
	if fs.Median != 5 {
		t.Fatalf("median %v want 5", fs.Median)
	}
	if fs.Min != 3 || fs.Max != 9 || fs.Count != 3 {
		t.Fatalf("stats %+v", fs)
	}
}

func Test_finalizeFunctionStats_MedianEven(t *testing.T) {
	fs := statsOf(11, 3, 9, 5)
	if fs.Median != 7.0 {
		t.Fatalf("median %v want 7.0", fs.Median)
	}
	if fs.Average != 7.0 {
		t.Fatalf("average %v want 7.0", fs.Average)
	}
}

func Test_finalizeFunctionStats_Ordering(t *testing.T) {
	fs := statsOf(12, 4, 8, 40, 2)
	if !(float64(fs.Min) <= fs.Median && fs.Median <= float64(fs.Max)) {
		t.Fatalf("min<=median<=max violated: %+v", fs)
	}
	if !(float64(fs.Min) <= fs.Average && fs.Average <= float64(fs.Max)) {
		t.Fatalf("min<=average<=max violated: %+v", fs)
	}
}

func Test_finalizeResult_ForceInsertRequested(t *testing.T) {
	result := &models.AnalysisResult{}
	opts := models.AnalysisOptions{Languages: []models.Language{models.LangJava, models.LangPython}}
	finalizeResult(result, opts)

	// 请求过但没有匹配文件的语言也要出现（全零汇总），
	// 让调用方能区分“请求了但为空”和“没请求”
	for _, lang := range opts.Languages {
		s, ok := result.LanguageSummaries[lang]
		if !ok {
			t.Fatalf("requested language %s missing", lang)
		}
		if s.FileCount != 0 || s.Functions.Count != 0 {
			t.Fatalf("expected zero summary for %s: %+v", lang, s)
		}
	}
}

func Test_LongestShortestFunction(t *testing.T) {
	result := &models.AnalysisResult{}
	s := result.Summary(models.LangPython)
	s.Functions.Details = []models.FunctionRecord{
		{Name: "short", Length: 2},
		{Name: "long", Length: 40},
		{Name: "mid", Length: 10},
	}

	if got := LongestFunction(result); got == nil || got.Name != "long" {
		t.Fatalf("longest: %+v", got)
	}
	if got := ShortestFunction(result); got == nil || got.Name != "short" {
		t.Fatalf("shortest: %+v", got)
	}

	empty := &models.AnalysisResult{}
	if LongestFunction(empty) != nil || ShortestFunction(empty) != nil {
		t.Fatal("empty result has no extremes")
	}
}

func Test_MergedSummary(t *testing.T) {
	result := &models.AnalysisResult{}
	c := result.Summary(models.LangC)
	c.FileCount, c.LineCount = 2, 100
	cpp := result.Summary(models.LangCpp)
	cpp.FileCount, cpp.LineCount = 3, 250

	merged := MergedSummary(result, models.LangC, models.LangCpp)
	if merged.FileCount != 5 || merged.LineCount != 350 {
		t.Fatalf("merged %+v", merged)
	}

	all := MergedSummary(result)
	if all.FileCount != 5 || all.LineCount != 350 {
		t.Fatalf("merged all %+v", all)
	}
}
