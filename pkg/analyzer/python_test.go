package analyzer

import (
	"testing"
)

func Test_extractPythonFunctions_TwoFunctions(t *testing.T) {
	lines := []string{
		"def f():",
		"    x = 1",
		"    y = 2",
		"def g():",
		"    pass",
	}
	funcs := extractPythonFunctions(lines, "a.py")
	if len(funcs) != 2 {
		t.Fatalf("want 2 functions, got %d", len(funcs))
	}
	if funcs[0].Name != "f" || funcs[0].Length != 3 || funcs[0].StartLine != 1 {
		t.Fatalf("f: %+v", funcs[0])
	}
	if funcs[1].Name != "g" || funcs[1].Length != 2 || funcs[1].StartLine != 4 {
		t.Fatalf("g: %+v", funcs[1])
	}
}

func Test_extractPythonFunctions_BodyRules(t *testing.T) {
	lines := []string{
		"def outer():",
		"    a = 1",
		"",
		"    # still inside",
		"# dedented comment, still enclosed",
		"    b = 2",
		"x = 3",
	}
	funcs := extractPythonFunctions(lines, "b.py")
	if len(funcs) != 1 {
		t.Fatalf("want 1, got %d", len(funcs))
	}
	// 签名 + a/注释/注释/b 四个非空行
	if funcs[0].Length != 5 {
		t.Fatalf("length %d want 5", funcs[0].Length)
	}
}

func Test_extractPythonFunctions_Nested(t *testing.T) {
	lines := []string{
		"def outer():",
		"    def inner():",
		"        pass",
		"    return inner",
	}
	funcs := extractPythonFunctions(lines, "c.py")
	// 嵌套 def 同样被独立记录
	if len(funcs) != 2 {
		t.Fatalf("want outer and inner, got %d", len(funcs))
	}
	if funcs[0].Name != "outer" || funcs[0].Length != 4 {
		t.Fatalf("outer: %+v", funcs[0])
	}
	if funcs[1].Name != "inner" || funcs[1].Length != 2 {
		t.Fatalf("inner: %+v", funcs[1])
	}
}

func Test_pythonFunctionName(t *testing.T) {
	cases := map[string]string{
		"def f(a, b):":   "f",
		"def g:":         "g",
		"def ":           "unknown",
		"def   spaced (": "spaced",
	}
	for line, want := range cases {
		if got := pythonFunctionName(line); got != want {
			t.Fatalf("%q => %q want %q", line, got, want)
		}
	}
}
