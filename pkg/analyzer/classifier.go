package analyzer

import (
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// LineKind 是单行的分类结果
type LineKind int

// 行分类枚举
const (
	LineBlank LineKind = iota
	LineComment
	LineLogical
)

// classifyLine 对单行做分类，并返回下一行的块注释状态
//
// Python 只识别以 # 开头的整行注释（不追踪多行字符串，这是有意的简化）
// 花括号语系跨行维护一个 inBlockComment 标志：
//   - 处于块注释中时整行计为注释，出现 */ 后结束块注释
//   - 以 // 或 /* 开头的行计为注释；/* 未在同一行闭合则进入块注释
//   - 以 * 开头的行按 Javadoc 风格的续行计为注释
//   - 其余包含未闭合 /* 的行自身仍是逻辑行，但下一行起进入块注释
func classifyLine(line string, lang models.Language, inBlockComment bool) (LineKind, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineBlank, inBlockComment
	}

	if lang == models.LangPython {
		if strings.HasPrefix(trimmed, "#") {
			return LineComment, false
		}
		return LineLogical, false
	}

	if inBlockComment {
		if strings.Contains(trimmed, "*/") {
			return LineComment, false
		}
		return LineComment, true
	}

	switch {
	case strings.HasPrefix(trimmed, "//"):
		return LineComment, false
	case strings.HasPrefix(trimmed, "/*"):
		if strings.Contains(trimmed[2:], "*/") {
			return LineComment, false
		}
		return LineComment, true
	case strings.HasPrefix(trimmed, "*"):
		return LineComment, false
	}

	if idx := strings.Index(trimmed, "/*"); idx >= 0 && !strings.Contains(trimmed[idx+2:], "*/") {
		return LineLogical, true
	}
	return LineLogical, false
}

// lineTally 是单文件的行分类计数
type lineTally struct {
	logical int
	blank   int
	comment int
}

// tallyLines 对整个文件应用分类器
func tallyLines(lines []string, lang models.Language) lineTally {
	var t lineTally
	inBlock := false
	for _, line := range lines {
		var kind LineKind
		kind, inBlock = classifyLine(line, lang, inBlock)
		switch kind {
		case LineBlank:
			t.blank++
		case LineComment:
			t.comment++
		case LineLogical:
			t.logical++
		}
	}
	return t
}
