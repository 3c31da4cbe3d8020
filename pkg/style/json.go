package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值以缩进并带键名高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本，校验并缩进
//   - 其他任意 Go 值: 使用 [json.MarshalIndent] 编码后再渲染
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeKeyed(pretty, ':'))
	return err
}

// FormatJSON 返回美化（缩进）的 JSON 字符串
func FormatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		return indentJSON([]byte(x))
	case []byte:
		return indentJSON(x)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return string(b), nil
	}
}

// indentJSON 校验并缩进原始 JSON 字节
func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeKeyed 对 "key<sep> value" 形式的多行文本做轻量高亮:
// 键名使用强调色，分隔符之后的内容保持原样
// JSON 用 ':'、TOML 用 '='，YAML 复用 ':'
func colorizeKeyed(s string, sep byte) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		idx := keyEnd(line, sep)
		if idx < 0 {
			b.WriteString(line)
			continue
		}
		b.WriteString(keyStyle.Render(line[:idx]))
		b.WriteString(line[idx:])
	}
	return b.String()
}

// keyEnd 返回行内键名部分的结束位置，没有键则返回 -1
// 只识别行首（允许缩进与 "- " 前缀）到首个分隔符之间不含引号外分隔符的简单键
func keyEnd(line string, sep byte) int {
	trimmed := strings.TrimLeft(line, " \t")
	trimmed = strings.TrimPrefix(trimmed, "- ")
	start := len(line) - len(trimmed)

	inString := false
	for i := start; i < len(line); i++ {
		ch := line[i]
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		if ch == sep {
			return i
		}
		// 行首不是键值对（如 JSON 的 '[' 或数组元素）则放弃
		if ch == '{' || ch == '[' || ch == '}' || ch == ']' || ch == ',' {
			return -1
		}
	}
	return -1
}
