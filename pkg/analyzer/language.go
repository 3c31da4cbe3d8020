// Package analyzer 提供源代码统计能力
// 它负责目录遍历、行分类、函数边界提取与按语言聚合，
// 不负责任何输出格式（见 pkg/export 与 pkg/style）
package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// ExtToLang 扩展名到语言的静态映射表
// 未出现在表中的扩展名不参与任何统计
var ExtToLang = map[string]models.Language{
	".c": models.LangC,

	".cc":  models.LangCpp,
	".cpp": models.LangCpp,
	".cxx": models.LangCpp,
	".h":   models.LangCpp,
	".hpp": models.LangCpp,
	".hh":  models.LangCpp,
	".hxx": models.LangCpp,

	".cs":   models.LangCSharp,
	".java": models.LangJava,
	".py":   models.LangPython,
}

// SupportedLanguages 返回所有受支持语言（固定顺序）
func SupportedLanguages() []models.Language {
	return []models.Language{
		models.LangC,
		models.LangCpp,
		models.LangCSharp,
		models.LangJava,
		models.LangPython,
	}
}

// detectLanguage 根据扩展名识别语言，第二个返回值表示是否受支持
func detectLanguage(path string) (models.Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := ExtToLang[ext]
	return lang, ok
}

// ParseLanguage 将用户输入（大小写不敏感，含常见别名）解析为语言枚举
func ParseLanguage(s string) (models.Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return models.LangC, true
	case "c++", "cpp", "cxx":
		return models.LangCpp, true
	case "c#", "cs", "csharp":
		return models.LangCSharp, true
	case "java":
		return models.LangJava, true
	case "python", "py":
		return models.LangPython, true
	default:
		return "", false
	}
}

// isBraceLanguage 判断语言是否属于花括号语系（C/C++/C#/Java）
func isBraceLanguage(lang models.Language) bool {
	return lang != models.LangPython
}
