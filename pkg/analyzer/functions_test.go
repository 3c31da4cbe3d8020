package analyzer

import (
	"testing"

	"github.com/yeisme/codestat/pkg/models"
)

func Test_CollectFunctions_Order(t *testing.T) {
	result := &models.AnalysisResult{}
	result.Summary(models.LangPython).Functions.Details = []models.FunctionRecord{
		{Name: "bbb", Length: 4},
		{Name: "aaa", Length: 4},
	}
	result.Summary(models.LangC).Functions.Details = []models.FunctionRecord{
		{Name: "big", Length: 30},
	}

	all := CollectFunctions(result)
	if len(all) != 3 {
		t.Fatalf("want 3, got %d", len(all))
	}
	if all[0].Name != "big" {
		t.Fatalf("longest first: %+v", all[0])
	}
	if all[1].Name != "aaa" || all[2].Name != "bbb" {
		t.Fatalf("ties by name: %+v", all[1:])
	}
}

func Test_FilterFunctions(t *testing.T) {
	records := []models.FunctionRecord{
		{Name: "handleRequest"},
		{Name: "parseHeader"},
		{Name: "main"},
	}
	if got := FilterFunctions(records, ""); len(got) != 3 {
		t.Fatal("empty pattern keeps everything")
	}
	got := FilterFunctions(records, "hdlreq")
	if len(got) != 1 || got[0].Name != "handleRequest" {
		t.Fatalf("fuzzy match: %+v", got)
	}
	if got := FilterFunctions(records, "zzz"); len(got) != 0 {
		t.Fatalf("no match expected: %+v", got)
	}
}
