package analyzer

import (
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// braceKeywords 是签名嗅探器拒绝的首 token 集合：
// 控制流与声明关键字都不是函数定义
var braceKeywords = map[string]bool{
	"if":      true,
	"for":     true,
	"while":   true,
	"switch":  true,
	"catch":   true,
	"return":  true,
	"else":    true,
	"class":   true,
	"struct":  true,
	"enum":    true,
	"case":    true,
	"default": true,
	"using":   true,
	"typedef": true,
}

// extractBraceFunctions 基于花括号深度提取 C/C++/C#/Java 函数边界
//
// 每个文件跑一个两态状态机（扫描签名 / 函数体内）：
//   - 扫描签名：连续非空行（去掉行尾 // 注释）累积进签名缓冲，
//     直到出现 {尚未出现 ( 时遇到空行放弃缓冲；未见 { 时
//     出现 ; 说明是语句或前向声明，同样放弃
//   - 缓冲被接受后进入函数体，深度从触发行的净花括号数起算；
//     净值 ≤0 说明是单行函数，立即记录
//   - 函数体内每个非空行使长度加一，深度归零（≤0）时定型记录
//
// 文件结束时仍未闭合的函数被静默丢弃，这是文档化的既定行为
func extractBraceFunctions(lines []string, lang models.Language, filePath string) []models.FunctionRecord {
	var records []models.FunctionRecord

	var sigBuf []string
	sigStart := 0
	inBody := false
	var name string
	var startLine, length, depth int

	reset := func() {
		sigBuf = sigBuf[:0]
		sigStart = 0
	}

	for i, raw := range lines {
		line := stripLineComment(raw)
		trimmed := strings.TrimSpace(line)

		if inBody {
			if trimmed != "" {
				length++
			}
			depth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
			if depth <= 0 {
				records = append(records, models.FunctionRecord{
					Name:      name,
					Language:  lang,
					FilePath:  filePath,
					StartLine: startLine,
					Length:    length,
				})
				inBody = false
				reset()
			}
			continue
		}

		if trimmed == "" {
			// 尚未出现 ( 的缓冲是误入，放弃
			if !strings.Contains(strings.Join(sigBuf, " "), "(") {
				reset()
			}
			continue
		}

		// 行首的收尾花括号属于上一个语句块，不参与签名；
		// 只剩收尾的行（"}" 或 "};"）使缓冲整体作废
		trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, "};"))
		if trimmed == "" {
			reset()
			continue
		}

		if len(sigBuf) == 0 {
			sigStart = i + 1
		}

		braceIdx := strings.IndexByte(trimmed, '{')
		if braceIdx < 0 {
			sigBuf = append(sigBuf, trimmed)
			if strings.Contains(trimmed, ";") {
				reset()
			}
			continue
		}

		signature := strings.TrimSpace(strings.Join(append(sigBuf, strings.TrimSpace(trimmed[:braceIdx])), " "))
		if !acceptSignature(signature) {
			reset()
			continue
		}

		name = braceFunctionName(signature)
		startLine = sigStart
		depth = strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		if depth <= 0 {
			// 单行函数
			records = append(records, models.FunctionRecord{
				Name:      name,
				Language:  lang,
				FilePath:  filePath,
				StartLine: startLine,
				Length:    1,
			})
			reset()
			continue
		}
		length = 0
		inBody = true
		reset()
	}

	return records
}

// acceptSignature 判断缓冲的签名文本是否是一个函数定义
func acceptSignature(sig string) bool {
	if sig == "" || strings.HasPrefix(sig, "#") || strings.HasSuffix(sig, ";") {
		return false
	}
	open := strings.IndexByte(sig, '(')
	closing := strings.LastIndexByte(sig, ')')
	if open < 0 || closing < 0 || closing < open {
		return false
	}
	// operator 重载不受关键字过滤约束
	if strings.Contains(sig, "operator") {
		return true
	}
	fields := strings.Fields(sig)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(fields[0])
	if braceKeywords[first] || first == "namespace" {
		return false
	}
	return true
}

// braceFunctionName 取签名中第一个 ( 左侧的 token 作为函数名，
// 去掉指针/引用/作用域限定字符，取不到时返回 "anonymous"
func braceFunctionName(sig string) string {
	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return "anonymous"
	}
	head := strings.TrimSpace(sig[:open])
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return "anonymous"
	}
	token := fields[len(fields)-1]
	// Foo::bar / *name / &name 之类的修饰
	if idx := strings.LastIndex(token, "::"); idx >= 0 {
		token = token[idx+2:]
	}
	token = strings.Trim(token, "*&: \t")
	if token == "" {
		return "anonymous"
	}
	return token
}

// stripLineComment 去掉行尾的 // 注释（行级启发式，不解析字符串字面量）
func stripLineComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}
