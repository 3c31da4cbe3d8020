package export

import (
	"bytes"
	"strings"

	"github.com/yeisme/codestat/pkg/models"
)

// utf8BOM 让 Excel 等工具把 CSV 识别为 UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RenderCSV 把结果渲染成带 BOM 的 CSV
// 表头列随选项增减（BlankLines/CommentLines 仅在对应口径开启时出现），
// 每种语言一行，按语言名升序；平均值与中位数保留两位小数
func RenderCSV(result *models.AnalysisResult) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString(strings.Join(columnHeaders(result), ","))
	buf.WriteByte('\n')

	for _, lang := range sortedLanguages(result) {
		buf.WriteString(strings.Join(rowValues(lang, result.LanguageSummaries[lang], result), ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
