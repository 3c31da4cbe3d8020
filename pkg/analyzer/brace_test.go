package analyzer

import (
	"testing"

	"github.com/yeisme/codestat/pkg/models"
)

func Test_extractBraceFunctions_Add(t *testing.T) {
	lines := []string{
		"int add(int a, int b) {",
		"    return a + b;",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangC, "add.c")
	if len(funcs) != 1 {
		t.Fatalf("want 1, got %d", len(funcs))
	}
	if funcs[0].Name != "add" || funcs[0].Length != 2 || funcs[0].StartLine != 1 {
		t.Fatalf("add: %+v", funcs[0])
	}
}

func Test_extractBraceFunctions_MultiLineSignature(t *testing.T) {
	lines := []string{
		"static std::string join(",
		"    const std::vector<std::string>& parts,",
		"    char sep)",
		"{",
		"    std::string out;",
		"    for (const auto& p : parts) {",
		"        out += p;",
		"    }",
		"    return out;",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangCpp, "join.cpp")
	if len(funcs) != 1 {
		t.Fatalf("want 1, got %d", len(funcs))
	}
	f := funcs[0]
	if f.Name != "join" || f.StartLine != 1 {
		t.Fatalf("join: %+v", f)
	}
	// 函数体 6 个非空行（嵌套花括号只影响深度，不产生第二条记录）
	if f.Length != 6 {
		t.Fatalf("length %d want 6", f.Length)
	}
}

func Test_extractBraceFunctions_KeywordFilter(t *testing.T) {
	lines := []string{
		"if (x > 0) {",
		"    doWork();",
		"}",
		"for (int i = 0; i < n; i++) {",
		"    doWork();",
		"}",
		"namespace demo {",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangCpp, "ctrl.cpp")
	if len(funcs) != 0 {
		t.Fatalf("control flow must not be recorded: %+v", funcs)
	}
}

func Test_extractBraceFunctions_StrayClosingBrace(t *testing.T) {
	// 被拒绝的 if 块的收尾 } 不能混入下一个签名，
	// 否则首 token 变成 } 而绕过关键字过滤
	lines := []string{
		"if (x > 0) {",
		"    doWork();",
		"}",
		"for (int i = 0; i < n; i++) {",
		"    doWork();",
		"}",
		"int real(int x) {",
		"    return x;",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangCpp, "stray.cpp")
	if len(funcs) != 1 {
		t.Fatalf("want only the real function: %+v", funcs)
	}
	if funcs[0].Name != "real" || funcs[0].StartLine != 7 {
		t.Fatalf("real: %+v", funcs[0])
	}
}

func Test_extractBraceFunctions_DeclarationsReset(t *testing.T) {
	lines := []string{
		"int forward(int x);",
		"int value = 42;",
		"",
		"int real(int x) {",
		"    return x;",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangC, "decl.c")
	if len(funcs) != 1 || funcs[0].Name != "real" {
		t.Fatalf("only the definition counts: %+v", funcs)
	}
	if funcs[0].StartLine != 4 {
		t.Fatalf("start line %d want 4", funcs[0].StartLine)
	}
}

func Test_extractBraceFunctions_OneLiner(t *testing.T) {
	lines := []string{
		"int id(int x) { return x; }",
	}
	funcs := extractBraceFunctions(lines, models.LangC, "id.c")
	if len(funcs) != 1 || funcs[0].Length != 1 {
		t.Fatalf("one-liner: %+v", funcs)
	}
}

func Test_extractBraceFunctions_Operator(t *testing.T) {
	lines := []string{
		"bool operator==(const Point& a, const Point& b) {",
		"    return a.x == b.x;",
		"}",
	}
	funcs := extractBraceFunctions(lines, models.LangCpp, "op.cpp")
	if len(funcs) != 1 {
		t.Fatalf("operator overload must be accepted: %+v", funcs)
	}
}

func Test_extractBraceFunctions_UnterminatedDropped(t *testing.T) {
	lines := []string{
		"void broken() {",
		"    doWork();",
	}
	funcs := extractBraceFunctions(lines, models.LangJava, "broken.java")
	if len(funcs) != 0 {
		t.Fatalf("unterminated function must be dropped: %+v", funcs)
	}
}

func Test_braceFunctionName(t *testing.T) {
	cases := map[string]string{
		"int add(int a, int b)":          "add",
		"std::string Foo::bar(int x)":    "bar",
		"char *strdup2(const char *s)":   "strdup2",
		"int &ref(int x)":                "ref",
		"(int x)":                        "anonymous",
	}
	for sig, want := range cases {
		if got := braceFunctionName(sig); got != want {
			t.Fatalf("%q => %q want %q", sig, got, want)
		}
	}
}

func Test_acceptSignature(t *testing.T) {
	if acceptSignature("#define MAX(a, b)") {
		t.Fatal("preprocessor must be rejected")
	}
	if acceptSignature("int forward(int x);") {
		t.Fatal("forward declaration must be rejected")
	}
	if acceptSignature("switch (x)") {
		t.Fatal("keyword must be rejected")
	}
	if !acceptSignature("public static void main(String[] args)") {
		t.Fatal("java main must be accepted")
	}
}
