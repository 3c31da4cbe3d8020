package analyzer

import (
	"testing"

	"github.com/yeisme/codestat/pkg/models"
)

func Test_classifyLine_Blank(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		kind, next := classifyLine("  \t ", lang, false)
		if kind != LineBlank || next {
			t.Fatalf("%s: blank misclassified", lang)
		}
	}
}

func Test_classifyLine_Python(t *testing.T) {
	if kind, _ := classifyLine("  # note", models.LangPython, false); kind != LineComment {
		t.Fatal("# line must be comment")
	}
	if kind, _ := classifyLine("x = 1  # trailing", models.LangPython, false); kind != LineLogical {
		t.Fatal("trailing # does not make the line a comment")
	}
}

func Test_classifyLine_BraceComments(t *testing.T) {
	lang := models.LangCpp

	if kind, next := classifyLine("// note", lang, false); kind != LineComment || next {
		t.Fatal("// line")
	}
	if kind, next := classifyLine("/* open", lang, false); kind != LineComment || !next {
		t.Fatal("/* must enter block mode")
	}
	if kind, next := classifyLine("/* closed */", lang, false); kind != LineComment || next {
		t.Fatal("same-line close must not enter block mode")
	}
	if kind, next := classifyLine(" * continuation", lang, false); kind != LineComment || next {
		t.Fatal("* continuation line")
	}

	// 块注释内部与收尾
	if kind, next := classifyLine("anything at all", lang, true); kind != LineComment || !next {
		t.Fatal("inside block comment")
	}
	if kind, next := classifyLine("end of block */", lang, true); kind != LineComment || next {
		t.Fatal("*/ must leave block mode after this line")
	}

	// 行尾开启块注释：当前行仍是逻辑行
	if kind, next := classifyLine("int x = 1; /* why", lang, false); kind != LineLogical || !next {
		t.Fatal("trailing /* keeps line logical but enters block mode")
	}
	if kind, next := classifyLine("int x = 1; /* why */", lang, false); kind != LineLogical || next {
		t.Fatal("balanced trailing block comment stays logical")
	}
}

func Test_tallyLines(t *testing.T) {
	lines := []string{
		"int main() {",
		"    // comment",
		"",
		"    return 0;",
		"}",
	}
	tally := tallyLines(lines, models.LangC)
	if tally.logical != 3 || tally.comment != 1 || tally.blank != 1 {
		t.Fatalf("tally %+v", tally)
	}
}
