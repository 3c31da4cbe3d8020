// Package models 定义 codestat 的核心数据模型
// 这些结构会被分析器、导出层和命令层共同使用
package models

// Language 表示一种受支持的编程语言
// 仅支持固定枚举，未知扩展名的文件不参与任何统计
type Language string

// 受支持的语言枚举
const (
	LangC      Language = "C"
	LangCpp    Language = "C++"
	LangCSharp Language = "C#"
	LangJava   Language = "Java"
	LangPython Language = "Python"
)

// AnalysisOptions 控制一次分析的范围与统计口径
// 零值表示统计所有受支持语言、不计空行与注释行
type AnalysisOptions struct {
	// Languages 为空表示统计所有受支持语言
	Languages []Language `json:"languages,omitempty" yaml:"languages,omitempty"`
	// IncludeBlankLines 为 true 时空白行计入 BlankLineCount
	IncludeBlankLines bool `json:"includeBlankLines" yaml:"include_blank_lines"`
	// IncludeCommentLines 为 true 时注释行计入 CommentLineCount 与行总数
	IncludeCommentLines bool `json:"includeCommentLines" yaml:"include_comment_lines"`
	// Workspace 是包含检查的信任根目录，为空时使用进程工作目录
	Workspace string `json:"-" yaml:"-"`
}

// WantsLanguage 判断某语言是否在本次分析范围内
func (o AnalysisOptions) WantsLanguage(lang Language) bool {
	if len(o.Languages) == 0 {
		return true
	}
	for _, l := range o.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// FunctionRecord 记录一个被发现的函数定义
// 一旦创建即不可变，由发现它的 LanguageSummary 持有
type FunctionRecord struct {
	Name      string   `json:"name" yaml:"name"`
	Language  Language `json:"language" yaml:"language"`
	FilePath  string   `json:"filePath" yaml:"file_path"`
	StartLine int      `json:"startLine" yaml:"start_line"` // 1-based
	Length    int      `json:"length" yaml:"length"`        // 含签名行
}

// FunctionStats 是某语言全部函数长度的分布统计
// 在遍历结束后由聚合器一次性定型（排序并计算各统计量）
type FunctionStats struct {
	Count   int              `json:"count" yaml:"count"`
	Min     int              `json:"minLength" yaml:"min_length"`
	Max     int              `json:"maxLength" yaml:"max_length"`
	Average float64          `json:"averageLength" yaml:"average_length"`
	Median  float64          `json:"medianLength" yaml:"median_length"`
	Details []FunctionRecord `json:"details,omitempty" yaml:"details,omitempty"`
}

// LanguageSummary 是单一语言的聚合统计
type LanguageSummary struct {
	FileCount        int           `json:"files" yaml:"files"`
	LineCount        int           `json:"lines" yaml:"lines"`
	BlankLineCount   int           `json:"blankLines" yaml:"blank_lines"`
	CommentLineCount int           `json:"commentLines" yaml:"comment_lines"`
	Functions        FunctionStats `json:"functions" yaml:"functions"`
}

// AnalysisResult 是一次分析的顶层输出
//
// 不变量：WithinWorkspace 或 DirectoryExists 为 false 时，
// 所有计数均为零且未发生任何目录遍历（快速失败，不是部分结果）
type AnalysisResult struct {
	LanguageSummaries map[Language]*LanguageSummary `json:"languages" yaml:"languages"`

	TotalLines        int `json:"totalLines" yaml:"total_lines"`
	TotalBlankLines   int `json:"totalBlankLines" yaml:"total_blank_lines"`
	TotalCommentLines int `json:"totalCommentLines" yaml:"total_comment_lines"`

	WithinWorkspace bool `json:"withinWorkspace" yaml:"within_workspace"`
	DirectoryExists bool `json:"directoryExists" yaml:"directory_exists"`

	// 回显本次分析使用的选项
	IncludedLanguages   []Language `json:"includedLanguages,omitempty" yaml:"included_languages,omitempty"`
	IncludeBlankLines   bool       `json:"includeBlankLines" yaml:"include_blank_lines"`
	IncludeCommentLines bool       `json:"includeCommentLines" yaml:"include_comment_lines"`
}

// Summary 返回某语言的聚合统计，不存在时创建空条目
func (r *AnalysisResult) Summary(lang Language) *LanguageSummary {
	if r.LanguageSummaries == nil {
		r.LanguageSummaries = make(map[Language]*LanguageSummary)
	}
	s, ok := r.LanguageSummaries[lang]
	if !ok {
		s = &LanguageSummary{}
		r.LanguageSummaries[lang] = s
	}
	return s
}
