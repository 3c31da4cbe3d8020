package analyzer

import (
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// extractPythonFunctions 基于缩进提取 Python 函数边界
//
// 任何去空白后以 "def " 开头的行都开启一个函数，记录其前导空格数 d
// （不归一化制表符，这是已知限制）函数体延续的条件：空行、缩进严格
// 大于 d、或缩进不大于 d 但以 # 开头（视作仍属函数的注释）
// 长度 = 1（签名行）+ 函数体内非空行数
//
// 本提取器不递归：嵌套 def 在当前函数内按普通行计数，
// 但外层循环推进到它自己的 def 行时会再次独立记录它
func extractPythonFunctions(lines []string, filePath string) []models.FunctionRecord {
	var records []models.FunctionRecord
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "def ") {
			continue
		}

		indent := leadingSpaces(line)
		length := 1
		for j := i + 1; j < len(lines); j++ {
			bodyTrimmed := strings.TrimSpace(lines[j])
			bodyIndent := leadingSpaces(lines[j])
			if bodyTrimmed != "" && bodyIndent <= indent && !strings.HasPrefix(bodyTrimmed, "#") {
				break
			}
			if bodyTrimmed != "" {
				length++
			}
		}

		records = append(records, models.FunctionRecord{
			Name:      pythonFunctionName(trimmed),
			Language:  models.LangPython,
			FilePath:  filePath,
			StartLine: i + 1,
			Length:    length,
		})
	}
	return records
}

// pythonFunctionName 取 "def " 与第一个 ( 之间的文本作为函数名，
// 没有 ( 时退回第一个 :，都没有则返回 "unknown"
func pythonFunctionName(trimmedDefLine string) string {
	rest := strings.TrimPrefix(trimmedDefLine, "def ")
	end := strings.IndexByte(rest, '(')
	if end < 0 {
		end = strings.IndexByte(rest, ':')
	}
	if end < 0 {
		return "unknown"
	}
	name := strings.TrimSpace(rest[:end])
	if name == "" {
		return "unknown"
	}
	return name
}

// leadingSpaces 统计行首空格字符数（不含制表符）
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
