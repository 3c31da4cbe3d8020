package style

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML 将任意值序列化为 YAML 并带键名高亮输出到 writer
func PrintYAML(w io.Writer, v any) error {
	pretty, err := FormatYAML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeKeyed(pretty, ':'))
	return err
}

// FormatYAML 返回序列化后的 YAML 字符串
func FormatYAML(v any) (string, error) {
	if v == nil {
		return "null\n", nil
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return string(b), nil
}
