package style

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// PrintTOML 将任意值序列化为 TOML 并带键名高亮输出到 writer
func PrintTOML(w io.Writer, v any) error {
	pretty, err := FormatTOML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeKeyed(pretty, '='))
	return err
}

// FormatTOML 返回序列化后的 TOML 字符串
func FormatTOML(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := toml.Marshal(v)
	if err != nil {
		return "", err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return string(b), nil
}
