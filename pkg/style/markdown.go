package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染传入的 Markdown 文本并输出到指定 writer
// width<=0 时使用探测到的终端宽度，并限制在 [80, 120] 区间
func RenderMarkdown(w io.Writer, input string, width int) error {
	termWidth := detectTerminalWidth(w)
	if termWidth <= 0 {
		termWidth = 80
	}
	if width <= 0 {
		width = termWidth
	}
	if width < 80 {
		width = 80
	}
	if width > 120 {
		width = min(120, termWidth)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
