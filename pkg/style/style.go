// Package style 提供统计报告在终端的样式化输出
package style

import "github.com/charmbracelet/lipgloss"

// 主题色集中定义，便于统一调整
const (
	// 强调色，用于表头与键名
	ColorAccent = lipgloss.Color("#33A1FF")

	// 普通文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 边框与标点颜色
	ColorBorder = lipgloss.Color("#444444")

	// 数字与布尔值颜色
	ColorNumber = lipgloss.Color("#d4ec19ff")

	// 成功/高亮绿色，用于最长函数等摘要行
	ColorSuccess = lipgloss.Color("#22C55E")
)
